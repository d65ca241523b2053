package kafka

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lizzyKeypad/internal/domain"
	"lizzyKeypad/internal/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestConsumerHandle(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		setup   func(uc *mocks.MockIKeypadUseCase)
		wantErr bool
	}{
		{
			name:  "вычисление передаётся в use case",
			value: `{"session_id":"s1","number1":2,"number2":3,"operation":"*","result":6,"display":"6"}`,
			setup: func(uc *mocks.MockIKeypadUseCase) {
				uc.EXPECT().HandleComputationEvent(gomock.Any(), domain.Computation{
					SessionID: "s1", Number1: 2, Number2: 3, Operation: "*", Result: 6, Display: "6",
				}).Return(nil)
			},
		},
		{
			name:  "битый JSON пропускается",
			value: `{not json`,
			setup: func(uc *mocks.MockIKeypadUseCase) {},
		},
		{
			name:  "ошибка обработки возвращается",
			value: `{"operation":"+"}`,
			setup: func(uc *mocks.MockIKeypadUseCase) {
				uc.EXPECT().HandleComputationEvent(gomock.Any(), gomock.Any()).Return(errors.New("click down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIKeypadUseCase(ctrl)
			tt.setup(uc)

			c := &Consumer{uc: uc, log: newTestLogger()}
			err := c.handle(context.Background(), Message{Key: []byte("2 * 3"), Value: []byte(tt.value)})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConsumerProcess(t *testing.T) {
	clickDown := errors.New("click down")
	msg := Message{Key: []byte("2 * 3"), Value: []byte(`{"operation":"*","result":6}`)}

	tests := []struct {
		name  string
		setup func(uc *mocks.MockIKeypadUseCase)
	}{
		{
			name: "успех с первой попытки",
			setup: func(uc *mocks.MockIKeypadUseCase) {
				uc.EXPECT().HandleComputationEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)
			},
		},
		{
			name: "временный сбой повторяется до успеха",
			setup: func(uc *mocks.MockIKeypadUseCase) {
				gomock.InOrder(
					uc.EXPECT().HandleComputationEvent(gomock.Any(), gomock.Any()).Return(clickDown).Times(2),
					uc.EXPECT().HandleComputationEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1),
				)
			},
		},
		{
			name: "после всех попыток сообщение сбрасывается",
			setup: func(uc *mocks.MockIKeypadUseCase) {
				uc.EXPECT().HandleComputationEvent(gomock.Any(), gomock.Any()).Return(clickDown).Times(3)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIKeypadUseCase(ctrl)
			tt.setup(uc)

			c := &Consumer{uc: uc, log: newTestLogger(), attempts: 3, backoff: time.Millisecond}
			require.NoError(t, c.process(context.Background(), msg))
		})
	}
}

// Отмена во время паузы между попытками оставляет сообщение незакоммиченным.
func TestConsumerProcess_CancelledDuringBackoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIKeypadUseCase(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	uc.EXPECT().HandleComputationEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Computation) error {
			cancel()
			return errors.New("click down")
		}).Times(1)

	c := &Consumer{uc: uc, log: newTestLogger(), attempts: 5, backoff: time.Hour}
	err := c.process(ctx, Message{Value: []byte(`{"operation":"+"}`)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConsumerProcess_AtLeastOneAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIKeypadUseCase(ctrl)
	uc.EXPECT().HandleComputationEvent(gomock.Any(), gomock.Any()).Return(errors.New("click down")).Times(1)

	c := &Consumer{uc: uc, log: newTestLogger()}
	assert.NoError(t, c.process(context.Background(), Message{Value: []byte(`{}`)}))
}

func TestConfigBrokers(t *testing.T) {
	cfg := &Config{Brokers: "a:9092, b:9092"}
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.brokersSlice())

	var empty *Config
	assert.Equal(t, []string{"localhost:9092"}, empty.brokersSlice())
}
