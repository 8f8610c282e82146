package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_Defaults(t *testing.T) {
	bi := Get()

	// ldflags 미주입 시 기본값이 채워져야 한다.
	assert.Equal(t, unknown, bi.Version)
	assert.Equal(t, unknown, bi.BuildDate)
	assert.Equal(t, "0", bi.BuildNumber)
	assert.Equal(t, runtime.Version(), bi.GoVersion)
	assert.Equal(t, runtime.GOOS, bi.OS)
	assert.Equal(t, runtime.GOARCH, bi.Arch)
}

func TestSet(t *testing.T) {
	original := Get()
	defer Set(original)

	Set(Info{Version: "v1.2.0", BuildDate: "2026-08-01T00:00:00Z", BuildNumber: "42"})

	bi := Get()
	assert.Equal(t, "v1.2.0", bi.Version)
	assert.Equal(t, "2026-08-01T00:00:00Z", bi.BuildDate)
	assert.Equal(t, "42", bi.BuildNumber)
	assert.Equal(t, runtime.Version(), bi.GoVersion, "런타임 정보는 항상 보강되어야 함")
}

func TestInfo_String(t *testing.T) {
	bi := enrich(Info{Version: "v1.0.0", BuildNumber: "7"})
	s := bi.String()

	assert.Contains(t, s, "v1.0.0")
	assert.Contains(t, s, "build 7")
	assert.Contains(t, s, runtime.GOOS)
}
