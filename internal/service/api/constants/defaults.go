package constants

import "time"

// HTTP 서버 타임아웃 기본값
const (
	// DefaultReadTimeout 요청 본문 읽기 제한 (8MiB 이미지 업로드를 고려하여 넉넉하게 설정)
	DefaultReadTimeout = 60 * time.Second

	// DefaultReadHeaderTimeout 요청 헤더 읽기 제한 (Slowloris 공격 방지)
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultWriteTimeout 응답 쓰기 제한
	DefaultWriteTimeout = 60 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결 유휴 제한
	DefaultIdleTimeout = 120 * time.Second

	// DefaultRequestTimeout 각 HTTP 요청의 최대 처리 시간 (초과 시 503 응답)
	DefaultRequestTimeout = 60 * time.Second
)

// Rate Limiting 기본값
const (
	// DefaultRateLimitPerSecond IP당 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP당 버스트 허용량
	DefaultRateLimitBurst = 40
)

// DefaultMaxBodySize 요청 본문 크기 상한.
// 업적 이미지 첨부파일의 최대 크기(8MiB)에 맞춰져 있으며, 초과 시 413 응답을 반환합니다.
const DefaultMaxBodySize = "8M"
