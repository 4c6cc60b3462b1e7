package user_repo

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot_backend/internal/model"
)

func TestCreateAndGetUser(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()

	id, err := r.CreateUser(ctx, &model.User{Name: "Player", Login: "player", Balance: 1000})
	require.NoError(t, err)
	require.NotZero(t, id)

	byLogin, err := r.GetUserByLogin(ctx, "player")
	require.NoError(t, err)
	assert.Equal(t, id, byLogin.ID)
	assert.Equal(t, 1000, byLogin.Balance)

	byID, err := r.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "player", byID.Login)
}

func TestDuplicateLoginRejected(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()

	_, err := r.CreateUser(ctx, &model.User{Login: "dup"})
	require.NoError(t, err)

	_, err = r.CreateUser(ctx, &model.User{Login: "dup"})
	assert.ErrorIs(t, err, ErrLoginTaken)
}

func TestUpdateBalance(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()

	id, err := r.CreateUser(ctx, &model.User{Login: "player", Balance: 1000})
	require.NoError(t, err)

	require.NoError(t, r.UpdateBalance(ctx, id, 1400))

	balance, err := r.GetBalance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1400, balance)

	assert.ErrorIs(t, r.UpdateBalance(ctx, 9999, 0), ErrUserNotFound)
}

func TestAdjustBalance(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()

	id, err := r.CreateUser(ctx, &model.User{Login: "player", Balance: 1000})
	require.NoError(t, err)

	balance, err := r.AdjustBalance(ctx, id, -100)
	require.NoError(t, err)
	assert.Equal(t, 900, balance)

	balance, err = r.AdjustBalance(ctx, id, 500)
	require.NoError(t, err)
	assert.Equal(t, 1400, balance)

	// Уход в минус отклоняется без изменения баланса
	_, err = r.AdjustBalance(ctx, id, -2000)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)

	balance, err = r.GetBalance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1400, balance)

	_, err = r.AdjustBalance(ctx, 9999, 10)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAdjustBalanceConcurrent(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()

	id, err := r.CreateUser(ctx, &model.User{Login: "player", Balance: 2000})
	require.NoError(t, err)

	// Конкурентные приращения не должны терять друг друга:
	// каждое применяется атомарно, а не как чтение-изменение-запись
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = r.AdjustBalance(ctx, id, 10)
		}()
		go func() {
			defer wg.Done()
			_, _ = r.AdjustBalance(ctx, id, -10)
		}()
	}
	wg.Wait()

	balance, err := r.GetBalance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2000, balance)
}

func TestReturnsCopies(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()

	id, err := r.CreateUser(ctx, &model.User{Login: "player", Balance: 1000})
	require.NoError(t, err)

	user, err := r.GetUserByID(ctx, id)
	require.NoError(t, err)

	// Мутация копии не должна менять хранилище
	user.Balance = 0

	balance, err := r.GetBalance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1000, balance)
}
