package notification

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/iancoleman/strcase"
)

const (
	// embedTitle 업적 달성 알림의 고정 제목
	embedTitle = "🏆 Achievement Unlocked!"

	// embedColor 업적 달성 알림의 임베드 색상 (Gold)
	embedColor = 0xF1C40F

	// detailsFieldName 업적 설명을 담는 부가 필드의 라벨
	detailsFieldName = "Details"

	// fallbackAttachmentName 업적 이름에서 첨부 파일명을 생성할 수 없을 때 사용하는 기본 이름
	fallbackAttachmentName = "achievement"
)

// buildMessage 알림 데이터를 디스코드 발송 메시지로 변환합니다.
//
// 이미지는 다음 우선순위로 정확히 하나만 사용됩니다.
//  1. 첨부 이미지: 파일로 함께 전송하고 임베드에서 attachment:// 참조
//  2. IconSource: http:// 또는 https:// 로 시작하는 경우에만 URL 직접 참조
//  3. 둘 다 없으면 이미지 없음
func buildMessage(n *Notification) *discordgo.MessageSend {
	embed := &discordgo.MessageEmbed{
		Title:       embedTitle,
		Description: fmt.Sprintf("**%s** has earned the achievement **%s**!", n.UserName, n.AchievementName),
		Color:       embedColor,
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	if n.AchievementDescription != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  detailsFieldName,
			Value: n.AchievementDescription,
		})
	}

	message := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	}

	switch {
	case n.Image != nil:
		filename := attachmentFilename(n)

		embed.Image = &discordgo.MessageEmbedImage{
			URL: "attachment://" + filename,
		}
		message.Files = []*discordgo.File{
			{
				Name:        filename,
				ContentType: n.Image.ContentType,
				Reader:      bytes.NewReader(n.Image.Data),
			},
		}

	case isTrustedImageURL(n.IconSource):
		embed.Image = &discordgo.MessageEmbedImage{
			URL: n.IconSource,
		}
	}

	return message
}

// attachmentFilename 첨부 이미지의 파일명을 결정합니다.
// 업로드 시 원본 파일명이 없으면 업적 이름을 snake_case로 변환하여 생성합니다.
func attachmentFilename(n *Notification) string {
	if n.Image.Filename != "" {
		return n.Image.Filename
	}

	name := strcase.ToSnake(n.AchievementName)
	if name == "" {
		name = fallbackAttachmentName
	}

	return name + imageExtension(n.Image.ContentType)
}

// imageExtension MIME 타입에 대응하는 파일 확장자를 반환합니다.
func imageExtension(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

// isTrustedImageURL 이미지 URL로 신뢰할 수 있는 스킴인지 확인합니다.
func isTrustedImageURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
