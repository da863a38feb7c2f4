package main

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kasanami/qrencode"
)

func TestEclFromFlag(t *testing.T) {
	cases := []struct {
		in   string
		want qrencode.Ecl
	}{
		{"l", qrencode.Low}, {"L", qrencode.Low},
		{"m", qrencode.Medium}, {"M", qrencode.Medium},
		{"q", qrencode.Quartile}, {"Q", qrencode.Quartile},
		{"h", qrencode.High}, {"H", qrencode.High},
	}
	for _, c := range cases {
		got, err := eclFromFlag(c.in)
		require.NoError(t, err)
		require.Equal(t, c.want, got)
	}
	_, err := eclFromFlag("x")
	require.Error(t, err)
}

func TestOutputType(t *testing.T) {
	old := g
	defer func() { g = old }()

	g.typ, g.out = "", ""
	require.Equal(t, "png", outputType())

	g.typ, g.out = "", "code.pbm"
	require.Equal(t, "pbm", outputType())

	g.typ, g.out = "", "code.PBM"
	require.Equal(t, "pbm", outputType())

	g.typ, g.out = "png", "code.pbm"
	require.Equal(t, "png", outputType(), "-t overrides the extension inferred from -o")
}

// TestEncodePipelineProducesPNG exercises the same encode -> WritePNG
// pipeline main runs for the default output type.
func TestEncodePipelineProducesPNG(t *testing.T) {
	ecl, err := eclFromFlag("m")
	require.NoError(t, err)

	segs, err := qrencode.MakeSegments("HELLO WORLD")
	require.NoError(t, err)
	code, err := qrencode.EncodeSegments(segs, ecl, qrencode.MinVersion, qrencode.MaxVersion, qrencode.AutoMask, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, qrencode.WritePNG(code, &buf, 4, 4))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	wantSide := (code.Size() + 8) * 4
	require.Equal(t, wantSide, img.Bounds().Dx())
	require.Equal(t, wantSide, img.Bounds().Dy())
}

// TestEncodePipelineProducesPBM exercises the same encode -> WritePBM
// pipeline main runs when -t pbm (or a .pbm output extension) is set.
func TestEncodePipelineProducesPBM(t *testing.T) {
	ecl, err := eclFromFlag("h")
	require.NoError(t, err)

	segs, err := qrencode.MakeSegments("12345")
	require.NoError(t, err)
	code, err := qrencode.EncodeSegments(segs, ecl, qrencode.MinVersion, qrencode.MaxVersion, qrencode.AutoMask, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, qrencode.WritePBM(code, &buf, 4))

	header := []byte("P4\n")
	require.True(t, bytes.HasPrefix(buf.Bytes(), header))
}
