package services

import (
	"context"
	"testing"

	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/models"
	"github.com/ArpanMallick2005/Ai-resume-Analy/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeServiceScopesToOwner(t *testing.T) {
	repo := newMemResumeRepo()
	svc := NewResumeService(repo)
	ctx := context.Background()

	id, err := repo.Create(ctx, models.NewResume("owner", "CV", models.StructuredResume{}))
	require.NoError(t, err)

	got, err := svc.Get(ctx, "owner", id)
	require.NoError(t, err)
	assert.Equal(t, "CV", got.Title)

	_, err = svc.Get(ctx, "intruder", id)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	list, err := svc.List(ctx, "intruder")
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.True(t, utils.IsCode(svc.Delete(ctx, "intruder", id), utils.CodeNotFound))
	require.NoError(t, svc.Delete(ctx, "owner", id))
	assert.True(t, utils.IsCode(svc.Delete(ctx, "owner", id), utils.CodeNotFound))
}

func TestResumeFileServiceReadsText(t *testing.T) {
	up := &memUploader{}
	svc := NewResumeFileService(up)

	data := []byte("Jane Doe\nGo engineer")
	f, err := svc.Read("cv.txt", data)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo engineer", f.Text)

	stored, err := svc.Archive(context.Background(), "u1", f, data)
	require.NoError(t, err)
	assert.Contains(t, stored, "gs://test/resumes/u1/")
	assert.Len(t, up.objects, 1)
}

func TestResumeFileServiceRejects(t *testing.T) {
	svc := NewResumeFileService(nil)

	_, err := svc.Read("cv.txt", nil)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, err = svc.Read("cv.txt", []byte("   \n "))
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, err = svc.Read("photo.png", []byte("\x89PNG\r\n\x1a\n0000"))
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	stored, err := svc.Archive(context.Background(), "u1", &ResumeFile{Name: "cv.txt"}, []byte("x"))
	require.NoError(t, err)
	assert.Empty(t, stored)
}
