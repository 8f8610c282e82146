// Package log 애플리케이션 전역 로깅 시스템을 제공합니다.
//
// Logrus를 기반으로 레벨별 파일 분리(Main/Critical/Verbose), 로그 로테이션(lumberjack),
// 컴포넌트 필드 헬퍼를 제공합니다. Setup()으로 초기화하고 반환된 Closer로 해제합니다.
package log

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
// 모든 로그에 component 필드를 일관되게 추가하기 위해 사용합니다.
func WithComponent(component string) *log.Entry {
	return log.WithFields(log.Fields{
		"component": component,
	})
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields log.Fields) *log.Entry {
	newFields := make(log.Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component
	return log.WithFields(newFields)
}

// WithFields logrus.WithFields로 위임합니다.
func WithFields(fields Fields) *Entry {
	return log.WithFields(fields)
}

// WithError logrus.WithError로 위임합니다.
func WithError(err error) *Entry {
	return log.WithError(err)
}

// StandardLogger 전역 logrus 표준 로거를 반환합니다.
func StandardLogger() *Logger {
	return log.StandardLogger()
}

// SetOutput 전역 로거의 출력 대상을 설정합니다. (테스트 용도)
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// SetFormatter 전역 로거의 포맷터를 설정합니다. (테스트 용도)
func SetFormatter(formatter Formatter) {
	log.SetFormatter(formatter)
}

// SetLevel 전역 로거의 로그 레벨을 설정합니다.
func SetLevel(level Level) {
	log.SetLevel(level)
}
