package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPDFEngine(t *testing.T) {
	e, err := NewPDFEngine("", "/usr/bin/chromium", time.Second)
	require.NoError(t, err)
	c, ok := e.(*ChromedpRenderer)
	require.True(t, ok)
	assert.Equal(t, "/usr/bin/chromium", c.chromePath)
	assert.Equal(t, time.Second, c.timeout)

	e, err = NewPDFEngine(EnginePlaywright, "", 0)
	require.NoError(t, err)
	p, ok := e.(*PlaywrightRenderer)
	require.True(t, ok)
	assert.Equal(t, defaultTO, p.timeout)

	_, err = NewPDFEngine("wkhtmltopdf", "", 0)
	assert.Error(t, err)
}
