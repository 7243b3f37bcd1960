package assist_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/socialspark/spark/internal/assist"
	"github.com/socialspark/spark/internal/assist/mock"
)

var (
	ctx     = context.Background()
	errTest = errors.New("test")
)

func TestAssistant_Unconfigured(t *testing.T) {
	a := assist.New(nil, 0)

	require.False(t, a.Configured())
	require.Equal(t, assist.MissingKeyMessage, a.Generate(ctx, "cats"))
	require.Equal(t, "my text", a.Improve(ctx, "my text"))
}

func TestAssistant_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockModel(ctrl)
	a := assist.New(m, time.Second)

	m.EXPECT().GenerateText(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, prompt string) (string, error) {
		require.True(t, strings.Contains(prompt, `"cats"`))
		_, ok := ctx.Deadline()
		require.True(t, ok, "timeout is applied")
		return "Cats are great 🐱", nil
	})
	require.Equal(t, "Cats are great 🐱", a.Generate(ctx, "cats"))

	m.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return("", errTest)
	require.Equal(t, "", a.Generate(ctx, "cats"))
}

func TestAssistant_Improve(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockModel(ctrl)
	a := assist.New(m, 0)

	m.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return("  Fixed text.\n", nil)
	require.Equal(t, "Fixed text.", a.Improve(ctx, "fixd txt"))

	m.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return("", errTest)
	require.Equal(t, "fixd txt", a.Improve(ctx, "fixd txt"))

	m.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return("   ", nil)
	require.Equal(t, "fixd txt", a.Improve(ctx, "fixd txt"))
}
