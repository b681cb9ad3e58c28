package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/gift_ledger/internal/domain"
	"github.com/Gunvolt24/gift_ledger/internal/kafka/mocks"
)

func TestPublisher_Publish_KeepsOrderAndKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)
	p := &Publisher{writer: w, topic: "ledger-batches", log: nopLogger{}}

	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 2)
			require.Equal(t, `{"kind":"reset"}`, string(msgs[0].Value))
			require.Equal(t, `{"kind":"regions","regions":[{"id":1,"name":"Asia"}]}`, string(msgs[1].Value))
			for _, m := range msgs {
				require.Equal(t, "ledger", string(m.Key))
			}
			return nil
		})

	err := p.Publish(context.Background(),
		&domain.Batch{Kind: domain.BatchReset},
		&domain.Batch{Kind: domain.BatchRegions, Regions: []domain.Region{{ID: 1, Name: "Asia"}}},
	)
	require.NoError(t, err)
}

func TestPublisher_PublishRaw_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)
	p := &Publisher{writer: w, topic: "t", log: nopLogger{}}

	// WriteMessages не должен вызываться
	require.NoError(t, p.PublishRaw(context.Background()))
}

func TestPublisher_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)
	p := &Publisher{writer: w, topic: "t", log: nopLogger{}}

	w.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("leader not available"))

	err := p.PublishRaw(context.Background(), []byte(`{"kind":"reset"}`))
	require.ErrorContains(t, err, "publish batches")
}

func TestPublisher_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockwriter(ctrl)
	p := &Publisher{writer: w, topic: "t", log: nopLogger{}}

	w.EXPECT().Close().Return(nil)
	require.NoError(t, p.Close())
}
