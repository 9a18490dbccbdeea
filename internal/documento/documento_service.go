package documento

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	documentoerrors "licitahub/internal/documento/errors"
	"licitahub/internal/empresa"
	empresaerrors "licitahub/internal/empresa/errors"
	"licitahub/internal/events"
	"licitahub/internal/shared/apperror"
	"licitahub/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var allowedExtensions = map[string]bool{
	"pdf":  true,
	"png":  true,
	"jpg":  true,
	"jpeg": true,
}

//go:generate mockgen -source=documento_service.go -destination=mock/documento_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, empresaID string) ([]DocumentoResponse, error)
	Upload(ctx context.Context, req UploadDocumentoRequest) (DocumentoResponse, error)
	GetByID(ctx context.Context, id string) (DocumentoResponse, error)
	Delete(ctx context.Context, id string) error
	GetAlertas(ctx context.Context, empresaID string) ([]DocumentoResponse, error)
	Tipos() []string
}

type service struct {
	db        *sql.DB
	repo      Repository
	empresas  empresa.Repository
	store     storage.Storage
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires the document module. The optional clock makes status
// derivation deterministic in tests.
func NewService(
	db *sql.DB,
	repo Repository,
	empresas empresa.Repository,
	store storage.Storage,
	publisher EventPublisher,
	now ...func() time.Time,
) Service {
	clock := time.Now
	if len(now) > 0 && now[0] != nil {
		clock = now[0]
	}
	return &service{
		db:        db,
		repo:      repo,
		empresas:  empresas,
		store:     store,
		publisher: publisher,
		logger:    zap.L().Named("documento.service"),
		now:       clock,
	}
}

func (s *service) GetAll(ctx context.Context, empresaID string) ([]DocumentoResponse, error) {
	uid, err := parseEmpresaID(empresaID)
	if err != nil {
		return nil, err
	}

	docs, err := s.refreshStatuses(ctx, uid)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(docs), nil
}

func (s *service) Upload(ctx context.Context, req UploadDocumentoRequest) (DocumentoResponse, error) {
	s.logger.Debug("upload documento requested",
		zap.String("empresa_id", req.EmpresaID),
		zap.String("tipo", req.Tipo),
		zap.String("nome_arquivo", req.NomeArquivo),
	)

	if strings.TrimSpace(req.EmpresaID) == "" {
		return DocumentoResponse{}, apperror.RequiredField("empresa_id")
	}
	if strings.TrimSpace(req.Tipo) == "" {
		return DocumentoResponse{}, apperror.RequiredField("tipo")
	}
	if strings.TrimSpace(req.NomeArquivo) == "" {
		return DocumentoResponse{}, documentoerrors.ErrArquivoObrigatorio
	}
	if !allowedFile(req.NomeArquivo) {
		s.logger.Warn("upload documento extension rejected", zap.String("nome_arquivo", req.NomeArquivo))
		return DocumentoResponse{}, documentoerrors.ErrExtensaoNaoPermitida
	}

	empresaUUID, err := uuid.Parse(req.EmpresaID)
	if err != nil {
		return DocumentoResponse{}, apperror.InvalidField("empresa_id")
	}

	if _, err := s.empresas.FindByID(ctx, empresaUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DocumentoResponse{}, empresaerrors.ErrEmpresaNaoEncontrada
		}
		return DocumentoResponse{}, err
	}

	dataEmissao, err := parseOptionalDate(req.DataEmissao, "data_emissao")
	if err != nil {
		return DocumentoResponse{}, err
	}
	dataValidade, err := parseOptionalDate(req.DataValidade, "data_validade")
	if err != nil {
		return DocumentoResponse{}, err
	}

	today := s.now()
	caminho := today.Format("20060102_150405") + "_" + sanitizeFilename(req.NomeArquivo)

	// The file lands in the blob store before the record is written. A
	// failed insert rolls the record back but leaves the file behind; the
	// orphan is accepted, matching the system this replaces.
	if err := s.store.Save(caminho, req.Conteudo); err != nil {
		s.logger.Error("upload documento file save failed", zap.String("caminho", caminho), zap.Error(err))
		return DocumentoResponse{}, apperror.Wrap(err, apperror.CodeStorageError, "Erro ao salvar arquivo", http.StatusInternalServerError)
	}

	doc := &Documento{
		ID:             uuid.New(),
		EmpresaID:      empresaUUID,
		Tipo:           req.Tipo,
		NomeArquivo:    req.NomeArquivo,
		CaminhoArquivo: caminho,
		DataEmissao:    dataEmissao,
		DataValidade:   dataValidade,
		Status:         DeriveStatus(dataValidade, today),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("upload documento begin tx failed", zap.Error(err))
		return DocumentoResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, doc); err != nil {
		s.logger.Error("upload documento persist failed", zap.Error(err))
		return DocumentoResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("upload documento commit failed", zap.Error(err))
		return DocumentoResponse{}, err
	}
	s.logger.Info("upload documento success",
		zap.String("documento_id", doc.ID.String()),
		zap.String("empresa_id", req.EmpresaID),
		zap.String("status", string(doc.Status)),
	)

	s.publishLifecycle(ctx, events.DocumentoCriadoType, doc)

	return mapToResponse(*doc), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DocumentoResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return DocumentoResponse{}, documentoerrors.ErrDocumentoNaoEncontrado
	}

	doc, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DocumentoResponse{}, documentoerrors.ErrDocumentoNaoEncontrado
		}
		return DocumentoResponse{}, err
	}

	return mapToResponse(*doc), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete documento requested", zap.String("documento_id", id))

	uid, err := uuid.Parse(id)
	if err != nil {
		return documentoerrors.ErrDocumentoNaoEncontrado
	}

	doc, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return documentoerrors.ErrDocumentoNaoEncontrado
		}
		return err
	}

	// File first: if the blob cannot be removed the record stays, so the
	// operation is all-or-nothing from the caller's perspective. A file
	// already gone is fine.
	if s.store.Exists(doc.CaminhoArquivo) {
		if err := s.store.Delete(doc.CaminhoArquivo); err != nil {
			s.logger.Error("delete documento file removal failed",
				zap.String("caminho", doc.CaminhoArquivo),
				zap.Error(err),
			)
			return apperror.Wrap(err, apperror.CodeStorageError, "Erro ao remover arquivo", http.StatusInternalServerError)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete documento begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, uid); err != nil {
		s.logger.Error("delete documento persist failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete documento commit failed", zap.Error(err))
		return err
	}
	s.logger.Info("delete documento success", zap.String("documento_id", id))

	s.publishLifecycle(ctx, events.DocumentoExcluidoType, doc)

	return nil
}

func (s *service) GetAlertas(ctx context.Context, empresaID string) ([]DocumentoResponse, error) {
	uid, err := parseEmpresaID(empresaID)
	if err != nil {
		return nil, err
	}

	// Refresh every status first so the alert filter sees current values.
	if _, err := s.refreshStatuses(ctx, uid); err != nil {
		return nil, err
	}

	docs, err := s.repo.FindByEmpresaAndStatusIn(ctx, uid, AlertStatuses())
	if err != nil {
		return nil, err
	}

	return mapToListResponse(docs), nil
}

func (s *service) Tipos() []string {
	return Tipos()
}

// refreshStatuses re-derives every document status for the empresa and
// persists the ones that changed, inside one transaction. Running it twice
// with the same clock is a no-op the second time.
func (s *service) refreshStatuses(ctx context.Context, empresaID uuid.UUID) ([]Documento, error) {
	docs, err := s.repo.FindAllByEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	var changed []Documento
	for i := range docs {
		status := DeriveStatus(docs[i].DataValidade, today)
		if status != docs[i].Status {
			docs[i].Status = status
			changed = append(changed, docs[i])
		}
	}

	if len(changed) == 0 {
		return docs, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("refresh status begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	for _, d := range changed {
		if err := qtx.UpdateStatus(ctx, d.ID, d.Status); err != nil {
			s.logger.Error("refresh status persist failed",
				zap.String("documento_id", d.ID.String()),
				zap.Error(err),
			)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("refresh status commit failed", zap.Error(err))
		return nil, err
	}
	s.logger.Debug("refresh status success",
		zap.String("empresa_id", empresaID.String()),
		zap.Int("changed", len(changed)),
	)

	return docs, nil
}

// publishLifecycle is best-effort: the alerting pipeline downstream must
// never fail an API call.
func (s *service) publishLifecycle(ctx context.Context, eventType string, doc *Documento) {
	event := events.DocumentoLifecycleEvent{
		EventType:   eventType,
		DocumentoID: doc.ID.String(),
		EmpresaID:   doc.EmpresaID.String(),
		Tipo:        doc.Tipo,
		Status:      string(doc.Status),
		OccurredAt:  s.now(),
	}
	if doc.DataValidade != nil {
		event.DataValidade = doc.DataValidade.Format(dateLayout)
	}

	if err := s.publisher.PublishLifecycle(ctx, event); err != nil {
		s.logger.Warn("publish documento lifecycle failed",
			zap.String("documento_id", doc.ID.String()),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func parseEmpresaID(empresaID string) (uuid.UUID, error) {
	if strings.TrimSpace(empresaID) == "" {
		return uuid.Nil, apperror.RequiredField("empresa_id")
	}
	uid, err := uuid.Parse(empresaID)
	if err != nil {
		return uuid.Nil, apperror.InvalidField("empresa_id")
	}
	return uid, nil
}

func parseOptionalDate(v, field string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, apperror.InvalidField(field)
	}
	return &t, nil
}

func allowedFile(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return ext != "" && allowedExtensions[ext]
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// sanitizeFilename strips directory components and collapses anything that
// is not filename-safe, so user input never shapes storage paths.
func sanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	return unsafeFilenameChars.ReplaceAllString(base, "_")
}

func mapToResponse(d Documento) DocumentoResponse {
	resp := DocumentoResponse{
		ID:             d.ID.String(),
		EmpresaID:      d.EmpresaID.String(),
		Tipo:           d.Tipo,
		NomeArquivo:    d.NomeArquivo,
		CaminhoArquivo: d.CaminhoArquivo,
		Status:         string(d.Status),
		CreatedAt:      d.CreatedAt.Format(time.RFC3339),
	}
	if d.DataEmissao != nil {
		resp.DataEmissao = d.DataEmissao.Format(dateLayout)
	}
	if d.DataValidade != nil {
		resp.DataValidade = d.DataValidade.Format(dateLayout)
	}
	return resp
}

func mapToListResponse(docs []Documento) []DocumentoResponse {
	resp := make([]DocumentoResponse, len(docs))
	for i, d := range docs {
		resp[i] = mapToResponse(d)
	}
	return resp
}
