package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"anoa.com/greencampus/internal/dto"
	"anoa.com/greencampus/internal/model"
	"anoa.com/greencampus/internal/repository"
	"anoa.com/greencampus/pkg/storage"
	"github.com/google/uuid"
)

type ContributionService interface {
	Upload(ctx context.Context, userID uuid.UUID, caption string, file *multipart.FileHeader) (*dto.ContributionResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]dto.ContributionResponse, error)
}

type contributionService struct {
	repo         repository.ContributionRepository
	imageStorage storage.ImageStorage
	uploadFolder string
}

func NewContributionService(repo repository.ContributionRepository, imageStorage storage.ImageStorage, uploadFolder string) ContributionService {
	return &contributionService{
		repo:         repo,
		imageStorage: imageStorage,
		uploadFolder: uploadFolder,
	}
}

func (s *contributionService) Upload(ctx context.Context, userID uuid.UUID, caption string, file *multipart.FileHeader) (*dto.ContributionResponse, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	fileURL, err := s.imageStorage.UploadImage(ctx, src, s.uploadFolder+"/contributions", file.Filename)
	if err != nil {
		return nil, err
	}

	contribution := &model.Contribution{
		UserID:  userID,
		Caption: caption,
		FileURL: fileURL,
	}

	if err := s.repo.Create(ctx, contribution); err != nil {
		return nil, err
	}

	return toContributionResponse(contribution), nil
}

func (s *contributionService) List(ctx context.Context, userID uuid.UUID) ([]dto.ContributionResponse, error) {
	contributions, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ContributionResponse, 0, len(contributions))
	for _, c := range contributions {
		responses = append(responses, *toContributionResponse(c))
	}
	return responses, nil
}

func toContributionResponse(c *model.Contribution) *dto.ContributionResponse {
	return &dto.ContributionResponse{
		ID:        c.ID,
		Caption:   c.Caption,
		FileURL:   c.FileURL,
		CreatedAt: c.CreatedAt,
	}
}
