// Package version 애플리케이션의 빌드 및 버저닝 정보를 관리하는 패키지입니다.
//
// 빌드 시점에 링커 플래그(-ldflags)로 주입된 메타데이터와 실행 시점의
// 환경 정보(Go 버전, OS, 아키텍처)를 통합하여 제공합니다.
package version

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
)

const unknown = "unknown"

// globalBuildInfo 전역 빌드 정보 (Atomic Value를 사용하여 Thread-Safe 보장)
var globalBuildInfo atomic.Value

// 다음 변수들은 Dockerfile에서 컴파일 시점에 링커 플래그(ldflags)를 통해 주입됩니다.
// 애플리케이션 로직에서는 직접 접근하지 말고 Get() 함수를 통해 조회해야 합니다.
var (
	appVersion  = "" // 애플리케이션 버전 (예: v1.2.0-12-g3ab9f01)
	buildDate   = "" // 빌드 수행 시간 (ISO 8601)
	buildNumber = "" // CI/CD 파이프라인 빌드 번호
)

func init() {
	set(enrich(Info{
		Version:     strings.TrimSpace(appVersion),
		BuildDate:   strings.TrimSpace(buildDate),
		BuildNumber: strings.TrimSpace(buildNumber),
	}))
}

// Info 애플리케이션의 빌드 정보를 담고 있습니다.
// 주로 /version API 엔드포인트나 로그 출력에 사용됩니다.
type Info struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
}

// String 빌드 정보를 사람이 읽기 쉬운 한 줄 문자열로 반환합니다.
func (i Info) String() string {
	return fmt.Sprintf("%s (build %s, %s, %s/%s)", i.Version, i.BuildNumber, i.GoVersion, i.OS, i.Arch)
}

// Get 애플리케이션의 빌드 정보를 반환합니다.
func Get() Info {
	bi := globalBuildInfo.Load()
	if bi == nil {
		return enrich(Info{})
	}
	return bi.(Info)
}

// Set 빌드 정보를 전역에 등록합니다. main 함수 초기에 한 번만 호출해야 합니다.
func Set(bi Info) {
	set(enrich(bi))
}

func set(bi Info) {
	globalBuildInfo.Store(bi)
}

// enrich 누락된 필드를 런타임 정보와 기본값으로 채웁니다.
func enrich(bi Info) Info {
	if bi.Version == "" {
		bi.Version = unknown
	}
	if bi.BuildDate == "" {
		bi.BuildDate = unknown
	}
	if bi.BuildNumber == "" {
		bi.BuildNumber = "0"
	}

	bi.GoVersion = runtime.Version()
	bi.OS = runtime.GOOS
	bi.Arch = runtime.GOARCH

	return bi
}
