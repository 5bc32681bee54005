package service

import (
	"context"
	"estudo_backend/internal/model"
	"estudo_backend/internal/repository"
	"estudo_backend/internal/util"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// QuestionFilter holds the optional exact-match filters of the question list.
type QuestionFilter struct {
	Discipline string
	Subject    string
	Topic      string
	Year       int
	Board      string
}

func (f QuestionFilter) predicates() []repository.QuestionPredicate {
	var preds []repository.QuestionPredicate
	add := func(field repository.QuestionField, value string) {
		if v := strings.TrimSpace(value); v != "" {
			preds = append(preds, repository.QuestionPredicate{Field: field, Value: v})
		}
	}
	add(repository.FieldDiscipline, f.Discipline)
	add(repository.FieldSubject, f.Subject)
	add(repository.FieldTopic, f.Topic)
	add(repository.FieldBoard, f.Board)
	if f.Year > 0 {
		preds = append(preds, repository.QuestionPredicate{Field: repository.FieldYear, Value: f.Year})
	}
	return preds
}

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{QuestionRepo: questionRepo}
}

// List 分页查询题目，limit 超过上限时截断
func (s *QuestionService) List(ctx context.Context, filter QuestionFilter, page, limit int) ([]model.Question, util.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = util.DefaultPageSize
	}
	if limit > util.MaxPageSize {
		limit = util.MaxPageSize
	}

	questions, total, err := s.QuestionRepo.List(ctx, filter.predicates(), page, limit)
	if err != nil {
		return nil, util.Pagination{}, util.StorageFailure(err)
	}
	return questions, util.NewPagination(page, limit, total), nil
}

func (s *QuestionService) Get(ctx context.Context, id uint) (*model.Question, error) {
	q, err := s.QuestionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, util.StorageFailure(err)
	}
	return q, nil
}

type questionSeed struct {
	Discipline     string                 `yaml:"discipline"`
	Subject        string                 `yaml:"subject"`
	Topic          string                 `yaml:"topic"`
	Year           int                    `yaml:"year"`
	Board          string                 `yaml:"board"`
	Exam           string                 `yaml:"exam"`
	Text           string                 `yaml:"text"`
	SupportingText string                 `yaml:"supporting_text"`
	ImageURL       string                 `yaml:"image_url"`
	Options        []model.QuestionOption `yaml:"options"`
	CorrectAnswer  string                 `yaml:"correct_answer"`
	Explanation    string                 `yaml:"explanation"`
	Type           string                 `yaml:"type"`
}

type questionSeedFile struct {
	Questions []questionSeed `yaml:"questions"`
}

// ImportYAML reads a `questions:` document and inserts every entry.
// Nothing is written when any entry is invalid.
func (s *QuestionService) ImportYAML(ctx context.Context, r io.Reader) (int, error) {
	var file questionSeedFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, util.Validation(fmt.Sprintf("invalid question file: %v", err))
	}

	questions := make([]model.Question, 0, len(file.Questions))
	for i, seed := range file.Questions {
		if strings.TrimSpace(seed.Text) == "" || strings.TrimSpace(seed.Subject) == "" {
			return 0, util.Validation(fmt.Sprintf("question %d: text and subject are required", i+1))
		}
		questions = append(questions, model.Question{
			Discipline:     seed.Discipline,
			Subject:        strings.TrimSpace(seed.Subject),
			Topic:          util.NilIfBlank(&seed.Topic),
			Year:           seed.Year,
			Board:          seed.Board,
			Exam:           seed.Exam,
			Text:           seed.Text,
			SupportingText: seed.SupportingText,
			ImageURL:       seed.ImageURL,
			Options:        seed.Options,
			CorrectAnswer:  seed.CorrectAnswer,
			Explanation:    seed.Explanation,
			Type:           seed.Type,
		})
	}

	if err := s.QuestionRepo.CreateBatch(ctx, questions); err != nil {
		return 0, util.StorageFailure(err)
	}
	return len(questions), nil
}
