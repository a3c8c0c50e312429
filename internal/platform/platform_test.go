// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-health-guard/models"
)

type recordingCallback struct {
	events chan string
}

func (c *recordingCallback) OnSucceeded() { c.events <- "succeeded" }
func (c *recordingCallback) OnFailed()    { c.events <- "failed" }
func (c *recordingCallback) OnError(code ErrorCode, _ string) {
	if code == ErrorHWNotPresent {
		c.events <- "hw-not-present"
		return
	}
	c.events <- "error"
}

func TestUnsupportedBiometric(t *testing.T) {
	b := NewUnsupportedBiometric()
	assert.Equal(t, AvailabilityNoHardware, b.CanAuthenticate())

	cb := &recordingCallback{events: make(chan string, 1)}
	cancel := b.Authenticate(models.DefaultPromptConfig(), cb)
	defer cancel()

	select {
	case ev := <-cb.events:
		assert.Equal(t, "hw-not-present", ev)
	case <-time.After(time.Second):
		t.Fatal("no terminal event")
	}
}

func TestUnsupportedBiometric_CancelledBeforeDelivery(t *testing.T) {
	cb := &recordingCallback{events: make(chan string, 1)}
	cancel := NewUnsupportedBiometric().Authenticate(models.DefaultPromptConfig(), cb)
	cancel()
	cancel()

	// событие либо не пришло, либо пришло ровно одно
	time.Sleep(20 * time.Millisecond)
	assert.LessOrEqual(t, len(cb.events), 1)
}

func TestDeviceInfo(t *testing.T) {
	info := DeviceInfo()
	require.NotEmpty(t, info)
	assert.True(t, strings.HasSuffix(info, "("+runtime.GOOS+"/"+runtime.GOARCH+")"))
}

func TestUserAgent(t *testing.T) {
	assert.True(t, strings.HasPrefix(UserAgent("WellTrack", "1.2.0"), "WellTrack/1.2.0 ("))
	assert.True(t, strings.HasPrefix(UserAgent("WellTrack", ""), "WellTrack/dev ("))
}
