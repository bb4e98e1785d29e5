package handler

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/yourusername/trivia-catalog-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-catalog-api/internal/pkg/errors"
)

// memStore - in-memory реализация CategoryRepository и QuestionRepository для тестов роутера
type memStore struct {
	mu         sync.Mutex
	categories map[uint]entity.Category
	questions  map[uint]entity.Question
	nextID     uint
	failWith   error // если задан, все методы возвращают эту ошибку
}

func newMemStore() *memStore {
	s := &memStore{
		categories: make(map[uint]entity.Category),
		questions:  make(map[uint]entity.Question),
	}
	for _, c := range seedCategories() {
		s.categories[c.ID] = c
	}
	for _, q := range seedQuestions() {
		s.questions[q.ID] = q
		if q.ID >= s.nextID {
			s.nextID = q.ID + 1
		}
	}
	return s
}

// seedCategories и seedQuestions повторяют migrations/000002_seed_data.up.sql
func seedCategories() []entity.Category {
	return []entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}

func seedQuestions() []entity.Question {
	return []entity.Question{
		{ID: 2, Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
		{ID: 4, Question: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", Category: 5, Difficulty: 4},
		{ID: 5, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
		{ID: 6, Question: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", Category: 5, Difficulty: 3},
		{ID: 9, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1},
		{ID: 10, Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Category: 6, Difficulty: 3},
		{ID: 11, Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: 6, Difficulty: 4},
		{ID: 12, Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Category: 4, Difficulty: 2},
		{ID: 13, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		{ID: 14, Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: 3, Difficulty: 3},
		{ID: 15, Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: 3, Difficulty: 2},
		{ID: 16, Question: "Which Dutch graphic artist–initials M C was a creator of optical illusions?", Answer: "Escher", Category: 2, Difficulty: 1},
		{ID: 17, Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
		{ID: 18, Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Category: 2, Difficulty: 4},
		{ID: 19, Question: "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", Answer: "Jackson Pollock", Category: 2, Difficulty: 2},
		{ID: 20, Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{ID: 21, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
		{ID: 22, Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: 1, Difficulty: 4},
		{ID: 23, Question: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", Category: 4, Difficulty: 4},
	}
}

// --- CategoryRepository ---

type memCategoryRepo struct{ s *memStore }

func (r memCategoryRepo) List() ([]entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	out := make([]entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memCategoryRepo) GetByID(id uint) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	c, ok := r.s.categories[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

// --- QuestionRepository ---

type memQuestionRepo struct{ s *memStore }

func (r memQuestionRepo) filter(keep func(entity.Question) bool) ([]entity.Question, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return nil, r.s.failWith
	}
	out := make([]entity.Question, 0)
	for _, q := range r.s.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memQuestionRepo) Create(q *entity.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return r.s.failWith
	}
	q.ID = r.s.nextID
	r.s.nextID++
	r.s.questions[q.ID] = *q
	return nil
}

func (r memQuestionRepo) ExistsByText(text string) (bool, error) {
	found, err := r.filter(func(q entity.Question) bool { return q.Question == text })
	return len(found) > 0, err
}

func (r memQuestionRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failWith != nil {
		return r.s.failWith
	}
	if _, ok := r.s.questions[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.s.questions, id)
	return nil
}

func (r memQuestionRepo) List() ([]entity.Question, error) {
	return r.filter(func(entity.Question) bool { return true })
}

func (r memQuestionRepo) Count() (int64, error) {
	all, err := r.List()
	return int64(len(all)), err
}

func (r memQuestionRepo) Search(term string) ([]entity.Question, error) {
	term = strings.ToLower(term)
	return r.filter(func(q entity.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	})
}

func (r memQuestionRepo) GetByCategory(categoryID uint) ([]entity.Question, error) {
	return r.filter(func(q entity.Question) bool { return q.Category == categoryID })
}

// --- Pinger ---

type fakePinger struct{ err error }

func (p fakePinger) Ping() error { return p.err }

var errStoreDown = errors.New("connection refused")
