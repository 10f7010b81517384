package services

import (
	"context"
	"testing"
	"time"

	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/logger"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/providers/llm"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCachedAIService(p *stubProvider, c *memCache) AIService {
	cached := llm.NewCachedProvider(p, c, time.Hour, logger.Nop())
	return NewAIService(cached, "gpt-4o-mini", newMemResumeRepo(), &captureUsage{}, logger.Nop())
}

func TestRetryAfterInvalidOutputReachesModel(t *testing.T) {
	p := &stubProvider{out: "Sorry, here is the resume: {broken"}
	c := newMemCache()
	svc := newCachedAIService(p, c)
	ctx := context.Background()

	_, err := svc.AnalyzeResume(ctx, "u1", "Experienced engineer...")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeBadOutput))
	assert.Empty(t, c.data)

	p.out = analysisJSON
	got, err := svc.AnalyzeResume(ctx, "u1", "Experienced engineer...")
	require.NoError(t, err)
	assert.EqualValues(t, 72, got.ATSScore)
	assert.Len(t, p.calls, 2)

	// a valid answer is memoized
	_, err = svc.AnalyzeResume(ctx, "u1", "Experienced engineer...")
	require.NoError(t, err)
	assert.Len(t, p.calls, 2)
}

func TestEnhanceSkipsCompletionCache(t *testing.T) {
	p := &stubProvider{out: "first version"}
	c := newMemCache()
	svc := newCachedAIService(p, c)
	ctx := context.Background()

	out, err := svc.EnhanceSummary(ctx, "u1", "I write Go")
	require.NoError(t, err)
	assert.Equal(t, "first version", out)

	p.out = "second version"
	out, err = svc.EnhanceSummary(ctx, "u1", "I write Go")
	require.NoError(t, err)
	assert.Equal(t, "second version", out)

	_, err = svc.EnhanceJobDescription(ctx, "u1", "moved stuff to k8s")
	require.NoError(t, err)

	assert.Len(t, p.calls, 3)
	assert.Empty(t, c.data)
	assert.True(t, p.calls[0].NoCache)
}
