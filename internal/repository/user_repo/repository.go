package user_repo

import (
	"context"
	"errors"
	"sync"

	"slot_backend/internal/model"
	"slot_backend/internal/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrLoginTaken   = errors.New("login already taken")
)

// Реализация репозитория пользователей в памяти.
// Баланс между перезапусками процесса не сохраняется - персистентность вне скоупа
type repo struct {
	mtx    sync.RWMutex
	users  map[int]*model.User
	logins map[string]int
	nextID int
}

func NewUserRepository() repository.UserRepository {
	return &repo{
		users:  make(map[int]*model.User),
		logins: make(map[string]int),
		nextID: 1,
	}
}

// CreateUser - создает нового пользователя.
// Возвращает ID созданного пользователя
func (r *repo) CreateUser(_ context.Context, user *model.User) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.logins[user.Login]; ok {
		return 0, ErrLoginTaken
	}

	id := r.nextID
	r.nextID++

	stored := *user
	stored.ID = id
	r.users[id] = &stored
	r.logins[user.Login] = id

	return id, nil
}

// GetUserByLogin - возвращает модель пользователя (ID, Name, Login, Password, Balance) по его логину
func (r *repo) GetUserByLogin(_ context.Context, login string) (*model.User, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	id, ok := r.logins[login]
	if !ok {
		return nil, ErrUserNotFound
	}

	user := *r.users[id]
	return &user, nil
}

// GetUserByID - возвращает модель пользователя по его ID
func (r *repo) GetUserByID(_ context.Context, id int) (*model.User, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

// GetBalance - получение баланса пользователя по его ID
func (r *repo) GetBalance(_ context.Context, id int) (int, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return 0, ErrUserNotFound
	}

	return user.Balance, nil
}

// UpdateBalance - обновляет баланс пользователя.
// Принимает ID пользователя и новую сумму баланса
func (r *repo) UpdateBalance(_ context.Context, id int, amount int) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	user, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}

	user.Balance = amount
	return nil
}

// AdjustBalance - атомарно меняет баланс на delta под блокировкой записи.
// Уход в минус отклоняется без изменения баланса
func (r *repo) AdjustBalance(_ context.Context, id int, delta int) (int, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	user, ok := r.users[id]
	if !ok {
		return 0, ErrUserNotFound
	}

	if user.Balance+delta < 0 {
		return 0, model.ErrInsufficientFunds
	}

	user.Balance += delta
	return user.Balance, nil
}
