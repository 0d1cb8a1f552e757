package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo(" 1.4.0 ", "", "abc123")

	assert.Equal(t, AppBuildInfo{Version: "1.4.0", Date: UnknownBuildValue, Commit: "abc123"}, info)
	assert.True(t, info.HasVersion())
	assert.Equal(t, "Build version: 1.4.0\nBuild date: N/A\nBuild commit: abc123\n", info.String())
}

func TestAppBuildInfo_HasVersion(t *testing.T) {
	assert.False(t, NewAppBuildInfo("", "", "").HasVersion())
	assert.False(t, AppBuildInfo{}.HasVersion())
}
