package media

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildMP4 assembles a minimal ftyp+moov/mvhd stream with the given timescale
// and duration.
func buildMP4(t *testing.T, timescale uint32, duration uint32) []byte {
	t.Helper()

	var ftyp bytes.Buffer
	payload := []byte("isom\x00\x00\x02\x00isomiso2")
	binary.Write(&ftyp, binary.BigEndian, uint32(8+len(payload)))
	ftyp.WriteString("ftyp")
	ftyp.Write(payload)

	var mvhd bytes.Buffer
	mvhd.Write([]byte{0, 0, 0, 0}) // version 0 + flags
	binary.Write(&mvhd, binary.BigEndian, uint32(0))
	binary.Write(&mvhd, binary.BigEndian, uint32(0))
	binary.Write(&mvhd, binary.BigEndian, timescale)
	binary.Write(&mvhd, binary.BigEndian, duration)

	var mvhdBox bytes.Buffer
	binary.Write(&mvhdBox, binary.BigEndian, uint32(8+mvhd.Len()))
	mvhdBox.WriteString("mvhd")
	mvhdBox.Write(mvhd.Bytes())

	var moov bytes.Buffer
	binary.Write(&moov, binary.BigEndian, uint32(8+mvhdBox.Len()))
	moov.WriteString("moov")
	moov.Write(mvhdBox.Bytes())

	return append(ftyp.Bytes(), moov.Bytes()...)
}

func TestDuration_Image(t *testing.T) {
	assert.Equal(t, ImageStorySeconds, Duration("image/png", bytes.NewReader(nil)))
	assert.Equal(t, ImageStorySeconds, Duration("image/gif", bytes.NewReader([]byte("GIF89a"))))
}

func TestDuration_MP4(t *testing.T) {
	data := buildMP4(t, 1000, 12_000) // 12 seconds
	assert.Equal(t, 12, Duration("video/mp4", bytes.NewReader(data)))
}

func TestDuration_UnreadableVideo(t *testing.T) {
	assert.Equal(t, 0, Duration("video/mp4", bytes.NewReader([]byte("not an mp4"))))
	assert.Equal(t, 0, Duration("video/mp4", bytes.NewReader(nil)))
}

func TestDuration_UnknownType(t *testing.T) {
	assert.Equal(t, 0, Duration("application/octet-stream", bytes.NewReader([]byte("x"))))
}
