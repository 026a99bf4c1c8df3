package render

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/lucidonlinenet/drastic-view/internal/domain"
	"github.com/lucidonlinenet/drastic-view/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestCanvas(t *testing.T, presenter domain.Presenter) *ImageCanvas {
	t.Helper()
	cv, err := NewImageCanvas(zap.NewNop(), &domain.ScreenResolution{Width: 320, Height: 240}, presenter)
	require.NoError(t, err)
	return cv
}

func TestImageCanvas_PresentForwardsFrame(t *testing.T) {
	ctrl := gomock.NewController(t)
	presenter := mocks.NewMockPresenter(ctrl)

	var frame image.Image
	presenter.EXPECT().
		Present(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f image.Image) error {
			frame = f
			return nil
		})

	cv := newTestCanvas(t, presenter)
	cv.Clear(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	require.NoError(t, cv.Present(context.Background()))

	require.NotNil(t, frame)
	assert.Equal(t, image.Pt(320, 240), frame.Bounds().Size())
}

func TestImageCanvas_PresenterFailureIsRenderBackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	presenter := mocks.NewMockPresenter(ctrl)
	presenter.EXPECT().
		Present(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	cv := newTestCanvas(t, presenter)
	err := cv.Present(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRenderBackend)
}

func TestImageCanvas_MeasureText(t *testing.T) {
	cv := newTestCanvas(t, mocks.NewMockPresenter(gomock.NewController(t)))

	short := cv.MeasureText("hi", domain.FontBody)
	long := cv.MeasureText("hi there, much longer line", domain.FontBody)
	assert.Positive(t, short)
	assert.Greater(t, long, short)

	// The title face is larger than the body face
	title := cv.MeasureText("hi", domain.FontTitle)
	assert.Greater(t, title, short)
}

func TestImageCanvas_DrawToleratesNilImage(t *testing.T) {
	cv := newTestCanvas(t, mocks.NewMockPresenter(gomock.NewController(t)))

	assert.NotPanics(t, func() {
		cv.DrawImage(nil, 0, 0, 100, 100)
		cv.DrawImage(image.NewRGBA(image.Rect(0, 0, 2, 2)), 0, 0, 0, 0)
	})
}

func TestImageCanvas_RejectsInvalidSize(t *testing.T) {
	_, err := NewImageCanvas(zap.NewNop(), &domain.ScreenResolution{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRenderBackend)
}
