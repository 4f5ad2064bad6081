package paybysquare_test

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paybysquare"
	"github.com/dmitrymomot/paybysquare/core/cache"
	"github.com/dmitrymomot/paybysquare/core/payment"
	"github.com/dmitrymomot/paybysquare/core/render"
	"github.com/dmitrymomot/paybysquare/core/storage"
	"github.com/dmitrymomot/paybysquare/pkg/lzma"
)

var dueDate = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

func referenceInstruction(opts ...payment.Option) payment.Instruction {
	return payment.New(append([]payment.Option{
		payment.WithIBAN("SK7700000000000000000000"),
		payment.WithSWIFT("CEKOSKBX"),
		payment.WithAmount(49.99),
		payment.WithCurrency("EUR"),
		payment.WithVariableSymbol("20240001"),
		payment.WithNote("Faktura 2024/001"),
		payment.WithDueDate(dueDate),
	}, opts...)...)
}

// countingCompressor wraps the native backend and counts calls.
func countingCompressor(calls *atomic.Int32) lzma.Compressor {
	native := lzma.NewNative()
	return lzma.CompressorFunc(func(ctx context.Context, data []byte) ([]byte, error) {
		calls.Add(1)
		return native.Compress(ctx, data)
	})
}

func newGenerator(t *testing.T, opts ...paybysquare.Option) *paybysquare.Generator {
	t.Helper()
	gen, err := paybysquare.New(append([]paybysquare.Option{paybysquare.WithCompressor(lzma.NewNative())}, opts...)...)
	require.NoError(t, err)
	return gen
}

func imageSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func TestNewOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []paybysquare.Option
		wantErr error
	}{
		{name: "defaults"},
		{name: "custom size", opts: []paybysquare.Option{paybysquare.WithDefaultSize(200)}},
		{name: "zero size", opts: []paybysquare.Option{paybysquare.WithDefaultSize(0)}, wantErr: render.ErrInvalidSize},
		{name: "unknown style", opts: []paybysquare.Option{paybysquare.WithDefaultStyle(render.Style(42))}, wantErr: render.ErrUnknownStyle},
		{name: "nil logger ignored", opts: []paybysquare.Option{paybysquare.WithLogger(nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen, err := paybysquare.New(tt.opts...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, gen)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, gen.Compressor())
		})
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	gen := newGenerator(t)
	text, err := gen.Encode(context.Background(), referenceInstruction())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "0006"))

	again, err := gen.Encode(context.Background(), referenceInstruction())
	require.NoError(t, err)
	assert.Equal(t, text, again)
}

func TestEncodeValidationError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	gen := newGenerator(t, paybysquare.WithCompressor(countingCompressor(&calls)))

	_, err := gen.Encode(context.Background(), referenceInstruction(payment.WithVariableSymbol("12A3")))
	require.Error(t, err)
	assert.ErrorIs(t, err, paybysquare.ErrValidation)
	assert.True(t, paybysquare.IsValidationError(err))
	assert.Zero(t, calls.Load())
}

func TestEncodeCompressorUnavailable(t *testing.T) {
	t.Parallel()

	gen := newGenerator(t, paybysquare.WithCompressor(lzma.NewXZ(
		lzma.WithSearchPaths(),
		lzma.WithLookPath(false),
	)))

	_, err := gen.Encode(context.Background(), referenceInstruction())
	require.Error(t, err)
	assert.ErrorIs(t, err, paybysquare.ErrCompressorUnavailable)
	assert.False(t, paybysquare.IsValidationError(err))
	assert.Error(t, gen.Check(context.Background()))
}

func TestEncodeUsesClock(t *testing.T) {
	t.Parallel()

	var captured []byte
	fake := lzma.CompressorFunc(func(_ context.Context, data []byte) ([]byte, error) {
		captured = append([]byte(nil), data...)
		return []byte{0x01}, nil
	})
	clock := func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local) }

	gen := newGenerator(t, paybysquare.WithCompressor(fake), paybysquare.WithClock(clock))
	in := payment.New(
		payment.WithIBAN("SK7700000000000000000000"),
		payment.WithAmount(10),
	)

	_, err := gen.Encode(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, string(captured), "\t20250601\t")
}

func TestEncodeCache(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	gen := newGenerator(t,
		paybysquare.WithCompressor(countingCompressor(&calls)),
		paybysquare.WithCache(cache.NewMemory(16), time.Minute),
	)

	first, err := gen.Encode(context.Background(), referenceInstruction())
	require.NoError(t, err)
	second, err := gen.Encode(context.Background(), referenceInstruction())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, calls.Load())

	_, err = gen.Encode(context.Background(), referenceInstruction(payment.WithVariableSymbol("20240002")))
	require.NoError(t, err)
	assert.EqualValues(t, 2, calls.Load())
}

func TestCacheFailuresAreIgnored(t *testing.T) {
	t.Parallel()

	mc := &MockCache{}
	mc.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	mc.On("Set", mock.Anything, mock.Anything, mock.Anything, time.Minute).Return(errors.New("connection refused"))

	gen := newGenerator(t, paybysquare.WithCache(mc, time.Minute))

	data, err := gen.PNG(context.Background(), referenceInstruction(), 120, render.StyleDefault)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	mc.AssertNumberOfCalls(t, "Get", 2)
	mc.AssertNumberOfCalls(t, "Set", 2)
}

func TestPNGStyles(t *testing.T) {
	t.Parallel()

	gen := newGenerator(t)

	tests := []struct {
		style render.Style
		wantW int
		wantH int
	}{
		{style: render.StyleDefault, wantW: 300, wantH: 300},
		{style: render.StyleTransparent, wantW: 300, wantH: 300},
		{style: render.StyleBorderedCard, wantW: 342, wantH: 384},
		{style: render.StyleBorderedCardTransparent, wantW: 342, wantH: 384},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			t.Parallel()

			data, err := gen.PNG(context.Background(), referenceInstruction(), 300, tt.style)
			require.NoError(t, err)
			w, h := imageSize(t, data)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestRenderDefaultSize(t *testing.T) {
	t.Parallel()

	gen := newGenerator(t, paybysquare.WithDefaultSize(150))
	text, err := gen.Encode(context.Background(), referenceInstruction())
	require.NoError(t, err)

	data, err := gen.Render(context.Background(), text, 0, render.StyleDefault)
	require.NoError(t, err)
	w, h := imageSize(t, data)
	assert.Equal(t, 150, w)
	assert.Equal(t, 150, h)
	assert.Equal(t, 150, gen.DefaultSize())
}

func TestRenderUnknownStyle(t *testing.T) {
	t.Parallel()

	gen := newGenerator(t)
	_, err := gen.Render(context.Background(), "text", 100, render.Style(9))
	assert.ErrorIs(t, err, render.ErrUnknownStyle)
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	gen := newGenerator(t, paybysquare.WithDefaultStyle(render.StyleBorderedCard))

	style, err := gen.ParseStyle("")
	require.NoError(t, err)
	assert.Equal(t, render.StyleBorderedCard, style)

	style, err = gen.ParseStyle("transparent")
	require.NoError(t, err)
	assert.Equal(t, render.StyleTransparent, style)

	_, err = gen.ParseStyle("fancy")
	assert.ErrorIs(t, err, render.ErrUnknownStyle)
}

func TestDataURIAndImgTag(t *testing.T) {
	t.Parallel()

	gen := newGenerator(t)
	ctx := context.Background()

	uri, err := gen.DataURI(ctx, referenceInstruction(), 200, render.StyleDefault)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	tag, err := gen.ImgTag(ctx, referenceInstruction(), 300, render.StyleBorderedCard, `Pay <now> & "save"`)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(tag, `<img src="data:image/png;base64,`))
	assert.Contains(t, tag, `alt="Pay &lt;now&gt; &amp; &#34;save&#34;"`)
	assert.Contains(t, tag, `width="342" height="384"`)
}

func TestSaveToFile(t *testing.T) {
	t.Parallel()

	gen := newGenerator(t)
	path := filepath.Join(t.TempDir(), "nested", "dir", "qr.png")

	require.NoError(t, gen.SaveToFile(context.Background(), referenceInstruction(), path, 200, render.StyleTransparent))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	w, _ := imageSize(t, data)
	assert.Equal(t, 200, w)
}

func TestSaveToFileValidationError(t *testing.T) {
	t.Parallel()

	gen := newGenerator(t)
	path := filepath.Join(t.TempDir(), "qr.png")

	err := gen.SaveToFile(context.Background(), referenceInstruction(payment.WithAmount(0)), path, 200, render.StyleDefault)
	assert.True(t, paybysquare.IsValidationError(err))
	assert.NoFileExists(t, path)
}

func TestStore(t *testing.T) {
	t.Parallel()

	t.Run("no storage", func(t *testing.T) {
		t.Parallel()

		gen := newGenerator(t)
		_, err := gen.Store(context.Background(), referenceInstruction(), "", 100, render.StyleDefault)
		assert.ErrorIs(t, err, paybysquare.ErrNoStorage)
	})

	t.Run("generated key", func(t *testing.T) {
		t.Parallel()

		local, err := storage.NewLocal(t.TempDir(), storage.WithBaseURL("https://cdn.example.com/qr"))
		require.NoError(t, err)
		gen := newGenerator(t, paybysquare.WithStorage(local))

		obj, err := gen.Store(context.Background(), referenceInstruction(), "", 100, render.StyleDefault)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(obj.Key, ".png"))
		assert.Len(t, obj.Key, 36+len(".png"))
		assert.Equal(t, paybysquare.PNGContentType, obj.ContentType)
		assert.Equal(t, "https://cdn.example.com/qr/"+obj.Key, obj.URL)

		ok, err := local.Exists(context.Background(), obj.Key)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("explicit key", func(t *testing.T) {
		t.Parallel()

		local, err := storage.NewLocal(t.TempDir())
		require.NoError(t, err)
		gen := newGenerator(t, paybysquare.WithStorage(local))

		obj, err := gen.Store(context.Background(), referenceInstruction(), "invoices/2024-001.png", 100, render.StyleDefault)
		require.NoError(t, err)
		assert.Equal(t, "invoices/2024-001.png", obj.Key)
		assert.Positive(t, obj.Size)
	})
}

func TestSVG(t *testing.T) {
	t.Parallel()

	gen := newGenerator(t)

	svg, err := gen.SVG(context.Background(), referenceInstruction(), 4)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "<rect")

	_, err = gen.SVG(context.Background(), referenceInstruction(), 0)
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	assert.NoError(t, newGenerator(t).Check(context.Background()))
}
