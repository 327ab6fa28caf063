package service

import (
	"context"
	"fmt"
	"tripdesk/config"
	"tripdesk/infras/otel"
	"tripdesk/infras/s3"
	"tripdesk/internal/domains/document/model"
	"tripdesk/internal/domains/document/model/dto"
	"tripdesk/internal/domains/document/repository"
	"tripdesk/shared"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

type Document interface {
	Upload(ctx context.Context, req dto.UploadDocumentRequest) (dto.DocumentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDocumentsResponse, error)
	Get(ctx context.Context, id string) (dto.DocumentResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Document
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(repo repository.Document, cfg *config.Config, otel otel.Otel, s3 s3.S3) Document {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
		s3:   s3,
	}
}

// Upload stores the file in object storage first, then records the document
// row. An orphaned object from a failed insert is acceptable; a row pointing
// to a missing object is not.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadDocumentRequest) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.FileData, req.File, req.File.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload document to S3")

		return res, fmt.Errorf("failed to upload document to S3: %w", err)
	}

	document := req.ToModel(url, req.File.Header.Get("Content-Type"), user)

	if err = s.repo.Insert(ctx, document); err != nil {
		log.Error().Err(err).Msg("failed to record document")

		return res, fmt.Errorf("failed to record document: %w", err)
	}

	res.FromModel(document)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDocumentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count documents")

		return res, fmt.Errorf("failed to count documents: %w", err)
	}

	documents, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get documents")

		return res, fmt.Errorf("failed to get documents: %w", err)
	}

	res.FromModels(documents, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	document, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get document")

		return res, fmt.Errorf("failed to get document: %w", err)
	}

	if document.ID == constant.Empty {
		return res, failure.NotFound("document not found") // nolint:wrapcheck
	}

	res.FromModel(document)

	return res, nil
}

// Delete removes the row first and cleans the stored object asynchronously.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	document, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get document")

		return fmt.Errorf("failed to get document: %w", err)
	}

	if document.ID == constant.Empty {
		return failure.NotFound("document not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete document")

		return fmt.Errorf("failed to delete document: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)
		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, document.FileURL)
		if objectName == constant.Empty {
			log.Warn().Str("url", document.FileURL).Msg("failed to extract object name from URL")

			return
		}

		if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
			log.Error().Err(err).Msg("failed to delete document from S3")
		}
	}()

	return nil
}
