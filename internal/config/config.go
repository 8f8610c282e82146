// Package config 애플리케이션의 환경설정 로드와 유효성 검증을 담당합니다.
//
// 설정은 다음 우선순위로 병합됩니다. (뒤로 갈수록 우선순위가 높음)
//
//  1. 기본값 (confmap)
//  2. JSON 설정 파일 (farchievements-server.json, 존재하는 경우에만)
//  3. 환경 변수 (FARCHIEVEMENTS_ 접두사)
//
// 환경 변수만으로도 기동이 가능하며, 필수 항목(공유 시크릿, 디스코드 봇 토큰,
// 대상 채널 ID)이 누락된 경우 로드가 실패하여 프로세스가 서비스 시작 전에 종료됩니다.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/theHazzard/farchievements-server/internal/pkg/errors"
	appvalidator "github.com/theHazzard/farchievements-server/internal/pkg/validator"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "farchievements-server"

	// DefaultFilename 실행 인자로 명시적인 경로가 제공되지 않을 경우 탐색하는 기본 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// envPrefix 환경 변수 접두사입니다.
	// 이중 언더스코어(__)는 계층 구분자(.)로 변환됩니다.
	// 예: FARCHIEVEMENTS_DISCORD__BOT_TOKEN -> discord.bot_token
	envPrefix = "FARCHIEVEMENTS_"

	// DefaultListenPort 웹 서버 기본 포트
	DefaultListenPort = 3000
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug   bool          `json:"debug"`
	Secret  string        `json:"secret" validate:"required" korean:"공유 시크릿(secret)"`
	Discord DiscordConfig `json:"discord"`
	WS      WSConfig      `json:"ws"`
	CORS    CORSConfig    `json:"cors"`
}

// validate 설정 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate() error {
	if err := appvalidator.Struct(c); err != nil {
		return apperrors.New(apperrors.InvalidInput, appvalidator.FormatValidationError(err))
	}

	if err := c.CORS.validate(); err != nil {
		return err
	}

	return nil
}

// DiscordConfig 디스코드 봇 토큰과 알림 대상 채널 정보를 담는 설정 구조체
type DiscordConfig struct {
	BotToken  string `json:"bot_token" validate:"required" korean:"디스코드 봇 토큰(discord.bot_token)"`
	ChannelID string `json:"channel_id" validate:"required" korean:"디스코드 채널 ID(discord.channel_id)"`
}

// WSConfig 웹 서버의 포트 설정을 정의하는 구조체
type WSConfig struct {
	ListenPort int `json:"listen_port" validate:"min=1,max=65535" korean:"웹 서버 포트(ws.listen_port)"`
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책을 설정하는 구조체
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins"`
}

func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(cors.allow_origins) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}

	return nil
}

// Load 기본 설정 파일과 환경 변수를 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일(존재하는 경우)과 환경 변수를 읽어 AppConfig 객체를 생성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	err := k.Load(confmap.Provider(map[string]interface{}{
		"ws.listen_port":     DefaultListenPort,
		"cors.allow_origins": []string{"*"},
	}, "."), nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	// 환경 변수만으로 기동하는 배포를 지원하기 위해 파일이 없는 경우는 에러로 처리하지 않습니다.
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	// 3. 환경 변수 로드 (최우선 순위, JSON 설정 덮어쓰기)
	// 예: FARCHIEVEMENTS_SECRET, FARCHIEVEMENTS_DISCORD__BOT_TOKEN, FARCHIEVEMENTS_WS__LISTEN_PORT
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링 (Strict Validation 적용)
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 정의되지 않은 필드가 있을 경우 에러를 발생시킴
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사 수행 (필수 값 누락 시 여기서 실패하여 서비스 시작이 중단됨)
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "환경설정의 유효성 검증에 실패했습니다")
	}

	return &appConfig, nil
}
