package usecase_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
	"github.com/libertyaulas/liberty-backoffice/internal/usecase"
)

// MockVideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, v *entity.Video) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVideoRepository) Update(ctx context.Context, v *entity.Video) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVideoRepository) FindByID(ctx context.Context, id string) (*entity.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) List(ctx context.Context, includeInactive bool) ([]entity.Video, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Video), args.Error(1)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSiteTextRepository
type MockSiteTextRepository struct {
	mock.Mock
}

func (m *MockSiteTextRepository) GetByKeys(ctx context.Context, keys []string) (map[string]string, error) {
	args := m.Called(ctx, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockSiteTextRepository) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// MockStorageUploader
type MockStorageUploader struct {
	mock.Mock
}

func (m *MockStorageUploader) Upload(ctx context.Context, bucket, objectPath, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, bucket, objectPath, contentType, body)
	return args.String(0), args.Error(1)
}

func TestCreateVideoNormalizesPastedURL(t *testing.T) {
	ctx := context.Background()

	mockVideos := new(MockVideoRepository)
	mockVideos.On("Create", ctx, mock.Anything).Return(nil)
	manager := usecase.NewContentManager(nil, nil, mockVideos, nil, nil)

	video, err := manager.CreateVideo(ctx, usecase.VideoInput{
		YoutubeID: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Title:     "Depoimento aluna",
		Active:    true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", video.YoutubeID)
}

func TestSetTextsRejectsUnknownKey(t *testing.T) {
	ctx := context.Background()

	mockTexts := new(MockSiteTextRepository)
	manager := usecase.NewContentManager(nil, nil, nil, mockTexts, nil)

	err := manager.SetTexts(ctx, map[string]string{
		"hero_title":     "Liberty Aulas",
		"not_a_real_key": "x",
	})
	assert.Equal(t, usecase.CodeValidation, domainCode(t, err))
	mockTexts.AssertNotCalled(t, "Set")
}

func TestSetTextsWritesKnownKeys(t *testing.T) {
	ctx := context.Background()

	mockTexts := new(MockSiteTextRepository)
	mockTexts.On("Set", ctx, "hero_title", "Liberty Aulas").Return(nil)
	manager := usecase.NewContentManager(nil, nil, nil, mockTexts, nil)

	err := manager.SetTexts(ctx, map[string]string{"hero_title": "Liberty Aulas"})
	assert.NoError(t, err)
	mockTexts.AssertCalled(t, "Set", ctx, "hero_title", "Liberty Aulas")
}

func TestGetTextsDefaultsToAllKeys(t *testing.T) {
	ctx := context.Background()

	mockTexts := new(MockSiteTextRepository)
	mockTexts.On("GetByKeys", ctx, usecase.SiteTextKeys).
		Return(map[string]string{"hero_title": "Liberty Aulas"}, nil)
	manager := usecase.NewContentManager(nil, nil, nil, mockTexts, nil)

	texts, err := manager.GetTexts(ctx, nil)
	assert.NoError(t, err)
	assert.Equal(t, "Liberty Aulas", texts["hero_title"])
}

func TestUploadImageRejectsUnknownBucket(t *testing.T) {
	ctx := context.Background()

	mockStorage := new(MockStorageUploader)
	manager := usecase.NewContentManager(nil, nil, nil, nil, mockStorage)

	url, err := manager.UploadImage(ctx, "private", "photo.png", "image/png", strings.NewReader("img"))
	assert.Empty(t, url)
	assert.Equal(t, usecase.CodeValidation, domainCode(t, err))
	mockStorage.AssertNotCalled(t, "Upload")
}

func TestUploadImageKeepsExtension(t *testing.T) {
	ctx := context.Background()

	mockStorage := new(MockStorageUploader)
	mockStorage.On("Upload", ctx, "site", mock.MatchedBy(func(path string) bool {
		return strings.HasPrefix(path, "bg/") && strings.HasSuffix(path, ".png")
	}), "image/png", mock.Anything).Return("https://cdn.example.com/site/bg/x.png", nil)

	manager := usecase.NewContentManager(nil, nil, nil, nil, mockStorage)

	url, err := manager.UploadImage(ctx, "site", "Hero Photo.PNG", "image/png", strings.NewReader("img"))
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/site/bg/x.png", url)
}
