package template

import (
	"context"
	"errors"

	"github.com/caseprepared/backend/internal/shared"
	"github.com/qdrant/go-client/qdrant"
	"gorm.io/gorm"
)

const embeddingCollection = "interview_templates"

// Filters narrows List to exact matches on the given attributes; empty
// fields are ignored.
type Filters struct {
	CaseType   string
	LeadType   string
	Difficulty string
	Company    string
	Industry   string
}

type Store struct {
	db     *gorm.DB
	qdrant *qdrant.Client
}

func NewStore(db *gorm.DB, qdrantClient *qdrant.Client) *Store {
	return &Store{
		db:     db,
		qdrant: qdrantClient,
	}
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Template{})
}

func (s *Store) Create(ctx context.Context, t *Template) error {
	if t.ID == "" {
		t.ID = shared.NewID("tmpl_")
	}
	if t.Version == "" {
		t.Version = "1.0"
	}
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *Store) GetByID(ctx context.Context, id string) (*Template, error) {
	var t Template
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	return &t, err
}

func (s *Store) List(ctx context.Context, filters Filters, skip, limit int) ([]Template, error) {
	if limit <= 0 {
		limit = 100
	}

	q := s.db.WithContext(ctx).Model(&Template{})
	if filters.CaseType != "" {
		q = q.Where("case_type = ?", filters.CaseType)
	}
	if filters.LeadType != "" {
		q = q.Where("lead_type = ?", filters.LeadType)
	}
	if filters.Difficulty != "" {
		q = q.Where("difficulty = ?", filters.Difficulty)
	}
	if filters.Company != "" {
		q = q.Where("company = ?", filters.Company)
	}
	if filters.Industry != "" {
		q = q.Where("industry = ?", filters.Industry)
	}

	var templates []Template
	err := q.Order("created_at DESC").Offset(skip).Limit(limit).Find(&templates).Error
	return templates, err
}

func (s *Store) Update(ctx context.Context, t *Template) error {
	return s.db.WithContext(ctx).Save(t).Error
}

func (s *Store) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&Template{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Upsert writes the template under its existing ID, creating the row when
// absent. The seed command uses it to keep fixture templates stable across
// restarts.
func (s *Store) Upsert(ctx context.Context, t *Template) error {
	if t.ID == "" {
		return s.Create(ctx, t)
	}
	existing, err := s.GetByID(ctx, t.ID)
	if errors.Is(err, shared.ErrNotFound) {
		return s.Create(ctx, t)
	}
	if err != nil {
		return err
	}
	t.CreatedAt = existing.CreatedAt
	return s.Update(ctx, t)
}

func (s *Store) SearchByEmbedding(ctx context.Context, embedding []float32, limit int) ([]Template, error) {
	if s.qdrant == nil {
		return nil, errors.New("qdrant client not configured")
	}

	results, err := s.qdrant.Query(ctx, &qdrant.QueryPoints{
		CollectionName: embeddingCollection,
		Query:          qdrant.NewQuery(embedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(results))
	for _, r := range results {
		if r.Id != nil {
			if uuid := r.Id.GetUuid(); uuid != "" {
				ids = append(ids, uuid)
			}
		}
	}

	if len(ids) == 0 {
		return []Template{}, nil
	}

	var templates []Template
	err = s.db.WithContext(ctx).Where("id IN ?", ids).Find(&templates).Error
	return templates, err
}

func (s *Store) UpsertEmbedding(ctx context.Context, templateID string, embedding []float32) error {
	if s.qdrant == nil {
		return errors.New("qdrant client not configured")
	}

	_, err := s.qdrant.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: embeddingCollection,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewID(templateID),
				Vectors: qdrant.NewVectors(embedding...),
			},
		},
	})
	return err
}

func (s *Store) DeleteEmbedding(ctx context.Context, templateID string) error {
	if s.qdrant == nil {
		return errors.New("qdrant client not configured")
	}

	_, err := s.qdrant.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: embeddingCollection,
		Points:         qdrant.NewPointsSelector(qdrant.NewID(templateID)),
	})
	return err
}
