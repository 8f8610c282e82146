package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage_AttachmentBeatsIconSource(t *testing.T) {
	n := newTestNotification()
	n.IconSource = "https://example.com/icon.png"
	n.Image = &ImageAttachment{
		Filename:    "trophy.png",
		ContentType: "image/png",
		Data:        make([]byte, 2048),
	}

	message := buildMessage(n)

	require.Len(t, message.Embeds, 1)
	require.NotNil(t, message.Embeds[0].Image)
	assert.Equal(t, "attachment://trophy.png", message.Embeds[0].Image.URL, "첨부 이미지가 항상 IconSource보다 우선해야 함")

	require.Len(t, message.Files, 1)
	assert.Equal(t, "trophy.png", message.Files[0].Name)
	assert.Equal(t, "image/png", message.Files[0].ContentType)
}

func TestBuildMessage_IconSource(t *testing.T) {
	tests := []struct {
		name       string
		iconSource string
		wantImage  bool
	}{
		{
			name:       "https URL은 신뢰됨",
			iconSource: "https://example.com/icon.png",
			wantImage:  true,
		},
		{
			name:       "http URL은 신뢰됨",
			iconSource: "http://example.com/icon.png",
			wantImage:  true,
		},
		{
			name:       "신뢰할 수 없는 스킴",
			iconSource: "ftp://evil",
			wantImage:  false,
		},
		{
			name:       "IconSource 없음",
			iconSource: "",
			wantImage:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newTestNotification()
			n.IconSource = tt.iconSource

			message := buildMessage(n)

			require.Len(t, message.Embeds, 1)
			assert.Empty(t, message.Files, "URL 참조 시 파일은 첨부되지 않아야 함")

			if tt.wantImage {
				require.NotNil(t, message.Embeds[0].Image)
				assert.Equal(t, tt.iconSource, message.Embeds[0].Image.URL)
			} else {
				assert.Nil(t, message.Embeds[0].Image)
			}
		})
	}
}

func TestBuildMessage_DetailsField(t *testing.T) {
	t.Run("설명이 있으면 부가 필드로 추가", func(t *testing.T) {
		n := newTestNotification()
		n.AchievementDescription = "Slay the ancient dragon of the northern peaks."

		message := buildMessage(n)

		require.Len(t, message.Embeds[0].Fields, 1)
		assert.Equal(t, detailsFieldName, message.Embeds[0].Fields[0].Name)
		assert.Equal(t, n.AchievementDescription, message.Embeds[0].Fields[0].Value)
	})

	t.Run("설명이 없으면 필드 없음", func(t *testing.T) {
		message := buildMessage(newTestNotification())

		assert.Empty(t, message.Embeds[0].Fields)
	})
}

func TestAttachmentFilename(t *testing.T) {
	tests := []struct {
		name         string
		notification *Notification
		want         string
	}{
		{
			name: "원본 파일명 우선",
			notification: &Notification{
				AchievementName: "Dragon Slayer",
				Image:           &ImageAttachment{Filename: "trophy.png", ContentType: "image/png"},
			},
			want: "trophy.png",
		},
		{
			name: "파일명이 없으면 업적 이름에서 생성",
			notification: &Notification{
				AchievementName: "Dragon Slayer",
				Image:           &ImageAttachment{ContentType: "image/png"},
			},
			want: "dragon_slayer.png",
		},
		{
			name: "jpeg MIME 타입 확장자",
			notification: &Notification{
				AchievementName: "First Blood",
				Image:           &ImageAttachment{ContentType: "image/jpeg"},
			},
			want: "first_blood.jpg",
		},
		{
			name: "업적 이름도 비어있으면 기본 이름",
			notification: &Notification{
				Image: &ImageAttachment{ContentType: "image/png"},
			},
			want: "achievement.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, attachmentFilename(tt.notification))
		})
	}
}
