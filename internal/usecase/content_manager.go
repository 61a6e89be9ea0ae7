package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
)

// SiteTextKeys are the slugs the public site and admin config screen read
// and write. Unknown keys are rejected on write to keep the table tidy.
var SiteTextKeys = []string{
	"hero_title",
	"hero_subtitle",
	"hero_video_url",
	"hero_bg_image_url",
	"contact_bg_image_url",
	"videos_title",
	"about_title",
	"about_subtitle",
	"about_image_url",
	"footer_whatsapp_principal",
	"footer_whatsapp_alt",
	"footer_email",
}

// ContentManager drives everything the admin edits about the public site:
// lesson packages, areas served, testimonial videos, editable texts and
// background-image uploads.
type ContentManager struct {
	Packages PackageRepositoryInterface
	Areas    AreaRepositoryInterface
	Videos   VideoRepositoryInterface
	Texts    SiteTextRepositoryInterface
	Storage  StorageUploader
}

func NewContentManager(
	packages PackageRepositoryInterface,
	areas AreaRepositoryInterface,
	videos VideoRepositoryInterface,
	texts SiteTextRepositoryInterface,
	storage StorageUploader,
) *ContentManager {
	return &ContentManager{
		Packages: packages,
		Areas:    areas,
		Videos:   videos,
		Texts:    texts,
		Storage:  storage,
	}
}

// ----- packages -----

func (m *ContentManager) CreatePackage(ctx context.Context, input PackageInput) (*entity.Package, error) {
	pkg, err := entity.NewPackage(cleanString(input.Title), input.Price, input.LessonCount, cleanString(input.Savings), input.CardColor)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}
	if err := m.Packages.Create(ctx, pkg); err != nil {
		return nil, databaseError("failed to create package", err)
	}
	return pkg, nil
}

func (m *ContentManager) UpdatePackage(ctx context.Context, id string, input PackageInput) (*entity.Package, error) {
	pkg, err := m.Packages.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "package", "failed to load package")
	}

	pkg.Title = cleanString(input.Title)
	pkg.Price = input.Price
	pkg.LessonCount = input.LessonCount
	pkg.Savings = cleanString(input.Savings)
	if input.CardColor != "" {
		pkg.CardColor = input.CardColor
	}
	pkg.UpdatedAt = time.Now()

	if err := m.Packages.Update(ctx, pkg); err != nil {
		return nil, mapRepoError(err, "package", "failed to update package")
	}
	return pkg, nil
}

func (m *ContentManager) DeletePackage(ctx context.Context, id string) error {
	if err := m.Packages.Delete(ctx, id); err != nil {
		return mapRepoError(err, "package", "failed to delete package")
	}
	return nil
}

func (m *ContentManager) ListPackages(ctx context.Context) ([]entity.Package, error) {
	packages, err := m.Packages.List(ctx)
	if err != nil {
		return nil, databaseError("failed to list packages", err)
	}
	return packages, nil
}

// ----- areas -----

func (m *ContentManager) CreateArea(ctx context.Context, input AreaInput) (*entity.Area, error) {
	area, err := entity.NewArea(cleanString(input.City), cleanString(input.ImageURL), input.Active, input.SortOrder)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}
	if err := m.Areas.Create(ctx, area); err != nil {
		return nil, databaseError("failed to create area", err)
	}
	return area, nil
}

func (m *ContentManager) UpdateArea(ctx context.Context, id string, input AreaInput) (*entity.Area, error) {
	area, err := m.Areas.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "area", "failed to load area")
	}

	area.City = cleanString(input.City)
	area.ImageURL = cleanString(input.ImageURL)
	area.Active = input.Active
	area.SortOrder = input.SortOrder
	area.UpdatedAt = time.Now()

	if err := m.Areas.Update(ctx, area); err != nil {
		return nil, mapRepoError(err, "area", "failed to update area")
	}
	return area, nil
}

func (m *ContentManager) DeleteArea(ctx context.Context, id string) error {
	if err := m.Areas.Delete(ctx, id); err != nil {
		return mapRepoError(err, "area", "failed to delete area")
	}
	return nil
}

func (m *ContentManager) ListAreas(ctx context.Context, includeInactive bool) ([]entity.Area, error) {
	areas, err := m.Areas.List(ctx, includeInactive)
	if err != nil {
		return nil, databaseError("failed to list areas", err)
	}
	return areas, nil
}

// ----- videos -----

func (m *ContentManager) CreateVideo(ctx context.Context, input VideoInput) (*entity.Video, error) {
	video, err := entity.NewVideo(NormalizeYoutubeID(input.YoutubeID), cleanString(input.Title), input.Active, input.SortOrder)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}
	if err := m.Videos.Create(ctx, video); err != nil {
		return nil, databaseError("failed to create video", err)
	}
	return video, nil
}

func (m *ContentManager) UpdateVideo(ctx context.Context, id string, input VideoInput) (*entity.Video, error) {
	video, err := m.Videos.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "video", "failed to load video")
	}

	if input.YoutubeID != "" {
		video.YoutubeID = NormalizeYoutubeID(input.YoutubeID)
	}
	video.Title = cleanString(input.Title)
	video.Active = input.Active
	video.SortOrder = input.SortOrder
	video.UpdatedAt = time.Now()

	if err := m.Videos.Update(ctx, video); err != nil {
		return nil, mapRepoError(err, "video", "failed to update video")
	}
	return video, nil
}

func (m *ContentManager) DeleteVideo(ctx context.Context, id string) error {
	if err := m.Videos.Delete(ctx, id); err != nil {
		return mapRepoError(err, "video", "failed to delete video")
	}
	return nil
}

func (m *ContentManager) ListVideos(ctx context.Context, includeInactive bool) ([]entity.Video, error) {
	videos, err := m.Videos.List(ctx, includeInactive)
	if err != nil {
		return nil, databaseError("failed to list videos", err)
	}
	return videos, nil
}

// ----- site texts -----

func (m *ContentManager) GetTexts(ctx context.Context, keys []string) (map[string]string, error) {
	if len(keys) == 0 {
		keys = SiteTextKeys
	}
	texts, err := m.Texts.GetByKeys(ctx, keys)
	if err != nil {
		return nil, databaseError("failed to load site texts", err)
	}
	return texts, nil
}

func (m *ContentManager) SetTexts(ctx context.Context, values map[string]string) error {
	for key := range values {
		if !isKnownTextKey(key) {
			return &DomainError{Code: CodeValidation, Message: "unknown site text key: " + key}
		}
	}
	for key, value := range values {
		if err := m.Texts.Set(ctx, key, value); err != nil {
			return databaseError("failed to save site text "+key, err)
		}
	}
	return nil
}

// ----- image upload -----

var allowedUploadBuckets = map[string]bool{
	"site":    true,
	"contact": true,
	"areas":   true,
}

// UploadImage stores a background/cover image in the given bucket and
// returns its public URL. The object name embeds a timestamp so repeated
// uploads never collide.
func (m *ContentManager) UploadImage(ctx context.Context, bucket, filename, contentType string, body io.Reader) (string, error) {
	if !allowedUploadBuckets[bucket] {
		return "", &DomainError{Code: CodeValidation, Message: "unknown upload bucket: " + bucket}
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		ext = "jpg"
	}
	objectPath := fmt.Sprintf("bg/%d_%06d.%s", time.Now().UnixMilli(), rand.Intn(1000000), ext)

	url, err := m.Storage.Upload(ctx, bucket, objectPath, contentType, body)
	if err != nil {
		return "", &TechnicalError{Code: "STORAGE_ERROR", Message: "upload failed: " + err.Error()}
	}
	return url, nil
}

func isKnownTextKey(key string) bool {
	for _, k := range SiteTextKeys {
		if k == key {
			return true
		}
	}
	return false
}

func mapRepoError(err error, what, msg string) error {
	if errors.Is(err, entity.ErrNotFound) {
		return notFound(what)
	}
	return databaseError(msg, err)
}
