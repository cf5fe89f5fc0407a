package qr

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	"github.com/jhoicas/stoqr-api/internal/application/inventory"
)

var _ inventory.QREncoder = (*Encoder)(nil)

const dataURLPrefix = "data:image/png;base64,"

// Encoder genera imágenes QR cuadradas en PNG y las devuelve como data URL.
type Encoder struct {
	margin int // módulos en blanco alrededor del código
	size   int // lado de la imagen en píxeles
}

// NewEncoder construye el codificador. margin en módulos, size en píxeles.
func NewEncoder(margin, size int) *Encoder {
	if margin < 0 {
		margin = 0
	}
	return &Encoder{margin: margin, size: size}
}

// Encode codifica payload con corrección de errores media.
// Si el código no cabe en size con al menos 1 px por módulo, la imagen crece lo necesario.
func (e *Encoder) Encode(ctx context.Context, payload string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return "", fmt.Errorf("qr encode: %w", err)
	}
	dim := code.Bounds().Dx()
	module := e.size / (dim + 2*e.margin)
	if module < 1 {
		module = 1
	}
	scaled, err := barcode.Scale(code, module*dim, module*dim)
	if err != nil {
		return "", fmt.Errorf("qr scale: %w", err)
	}

	side := e.size
	if need := module * (dim + 2*e.margin); need > side {
		side = need
	}
	canvas := image.NewGray(image.Rect(0, 0, side, side))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	offset := (side - module*dim) / 2
	draw.Draw(canvas, scaled.Bounds().Add(image.Pt(offset, offset)), scaled, scaled.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return "", fmt.Errorf("qr png: %w", err)
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeDataURL devuelve los bytes PNG de un data URL generado por Encode.
func DecodeDataURL(dataURL string) ([]byte, error) {
	if len(dataURL) < len(dataURLPrefix) || dataURL[:len(dataURLPrefix)] != dataURLPrefix {
		return nil, fmt.Errorf("data URL no es PNG base64")
	}
	return base64.StdEncoding.DecodeString(dataURL[len(dataURLPrefix):])
}
