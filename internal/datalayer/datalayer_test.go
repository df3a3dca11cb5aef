package datalayer_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fretlog/fretlog/internal/datalayer"
	mock_datalayer "github.com/fretlog/fretlog/internal/mocks/datalayer"
)

func TestParseMode(t *testing.T) {
	for _, tc := range []struct {
		name    string
		input   string
		want    datalayer.Mode
		wantErr bool
	}{
		{
			name:  "relational",
			input: "relational",
			want:  datalayer.ModeRelational,
		},
		{
			name:  "sheets",
			input: "sheets",
			want:  datalayer.ModeSheets,
		},
		{
			name:  "empty defaults to relational",
			input: "",
			want:  datalayer.ModeRelational,
		},
		{
			name:    "unknown",
			input:   "csv",
			wantErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			mode, err := datalayer.ParseMode(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, mode)
		})
	}
}

func TestNewSelectsConfiguredBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.DiscardHandler)

	relational := mock_datalayer.NewMockBackend(ctrl)
	relational.EXPECT().Available(gomock.Any()).Return(true)
	sheets := mock_datalayer.NewMockBackend(ctrl)

	data, err := datalayer.New(context.Background(), datalayer.ModeRelational, relational, sheets, logger)
	require.NoError(t, err)

	info := data.ModeInfo()
	assert.Equal(t, "relational", info.Mode)
	assert.Equal(t, "relational", info.Configured)
	assert.False(t, info.FellBack)
}

func TestNewPrefersSheetsWhenConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.DiscardHandler)

	relational := mock_datalayer.NewMockBackend(ctrl)
	sheets := mock_datalayer.NewMockBackend(ctrl)
	sheets.EXPECT().Available(gomock.Any()).Return(true)

	data, err := datalayer.New(context.Background(), datalayer.ModeSheets, relational, sheets, logger)
	require.NoError(t, err)

	info := data.ModeInfo()
	assert.Equal(t, "sheets", info.Mode)
	assert.False(t, info.FellBack)
}

func TestNewFallsBackWhenPrimaryUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.DiscardHandler)

	relational := mock_datalayer.NewMockBackend(ctrl)
	relational.EXPECT().Available(gomock.Any()).Return(true)
	sheets := mock_datalayer.NewMockBackend(ctrl)
	sheets.EXPECT().Available(gomock.Any()).Return(false)

	data, err := datalayer.New(context.Background(), datalayer.ModeSheets, relational, sheets, logger)
	require.NoError(t, err)

	info := data.ModeInfo()
	assert.Equal(t, "relational", info.Mode)
	assert.Equal(t, "sheets", info.Configured)
	assert.True(t, info.FellBack)
}

func TestNewFailsWhenNoBackendAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.DiscardHandler)

	relational := mock_datalayer.NewMockBackend(ctrl)
	relational.EXPECT().Available(gomock.Any()).Return(false)
	sheets := mock_datalayer.NewMockBackend(ctrl)
	sheets.EXPECT().Available(gomock.Any()).Return(false)

	_, err := datalayer.New(context.Background(), datalayer.ModeRelational, relational, sheets, logger)
	assert.Error(t, err)
}

func TestNewWithNilSecondary(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := slog.New(slog.DiscardHandler)

	relational := mock_datalayer.NewMockBackend(ctrl)
	relational.EXPECT().Available(gomock.Any()).Return(false)

	_, err := datalayer.New(context.Background(), datalayer.ModeRelational, relational, nil, logger)
	assert.Error(t, err)
}
