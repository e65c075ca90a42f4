package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		value string
		want  logrus.Level
	}{
		{"DEBUG", logrus.DebugLevel},
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"WARN", logrus.WarnLevel},
		{"WARNING", logrus.WarnLevel},
		{"ERROR", logrus.ErrorLevel},
		{"CRITICAL", logrus.FatalLevel},
		{" info ", logrus.InfoLevel},
		{"", logrus.InfoLevel},
		{"VERBOSE", logrus.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, ParseLevel(tt.value), "ParseLevel(%q)", tt.value)
	}
}

func TestNewTagsComponent(t *testing.T) {
	entry := New("settingsctl")
	assert.Equal(t, "settingsctl", entry.Data["component"])
}
