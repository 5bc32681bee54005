package repository

import (
	"context"
	"errors"
	"estudo_backend/internal/model"
	"estudo_backend/internal/util"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuestionField names a column questions may be filtered on.
type QuestionField string

const (
	FieldDiscipline QuestionField = "discipline"
	FieldSubject    QuestionField = "subject"
	FieldTopic      QuestionField = "topic"
	FieldYear       QuestionField = "year"
	FieldBoard      QuestionField = "board"
)

var questionFilterColumns = map[QuestionField]string{
	FieldDiscipline: "discipline",
	FieldSubject:    "subject",
	FieldTopic:      "topic",
	FieldYear:       "year",
	FieldBoard:      "board",
}

// QuestionPredicate is an equality filter on an allowed field.
type QuestionPredicate struct {
	Field QuestionField
	Value interface{}
}

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) List(ctx context.Context, predicates []QuestionPredicate, page, limit int) ([]model.Question, int64, error) {
	query := r.DB.WithContext(ctx).Model(&model.Question{})
	for _, p := range predicates {
		column, ok := questionFilterColumns[p.Field]
		if !ok {
			return nil, 0, util.Validation(fmt.Sprintf("unsupported filter %q", p.Field))
		}
		query = query.Where(clause.Eq{Column: clause.Column{Name: column}, Value: p.Value})
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	questions := make([]model.Question, 0, limit)
	if err := query.Order("id").Offset((page - 1) * limit).Limit(limit).Find(&questions).Error; err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.WithContext(ctx).First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) CreateBatch(ctx context.Context, questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).CreateInBatches(questions, 100).Error
}
