package media

import (
	"encoding/binary"
	"errors"
	"io"
	"strings"
)

// Still images get a fixed story duration; viewers see them as a short clip.
const ImageStorySeconds = 5

// Duration derives the story playback length in seconds from the payload.
// Images map to the fixed duration, mp4 video to its header duration. An
// unreadable or foreign payload yields 0, never an error: duration is
// best-effort metadata and must not block a submission.
func Duration(contentType string, r io.Reader) int {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return ImageStorySeconds
	case strings.HasPrefix(contentType, "video/"):
		sec, err := mp4DurationSeconds(r)
		if err != nil {
			return 0
		}
		return sec
	default:
		return 0
	}
}

var errNoMovieHeader = errors.New("media: mvhd box not found")

// mp4DurationSeconds walks top-level boxes until moov, then its children until
// mvhd, and computes duration/timescale.
func mp4DurationSeconds(r io.Reader) (int, error) {
	for {
		boxType, boxSize, err := readBoxHeader(r)
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return 0, errNoMovieHeader
			}
			return 0, err
		}

		switch boxType {
		case "moov":
			return scanMovieBox(io.LimitReader(r, boxSize))
		default:
			if err := discard(r, boxSize); err != nil {
				return 0, err
			}
		}
	}
}

func scanMovieBox(r io.Reader) (int, error) {
	for {
		boxType, boxSize, err := readBoxHeader(r)
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return 0, errNoMovieHeader
			}
			return 0, err
		}

		if boxType != "mvhd" {
			if err := discard(r, boxSize); err != nil {
				return 0, err
			}
			continue
		}

		return parseMovieHeader(io.LimitReader(r, boxSize))
	}
}

// parseMovieHeader reads timescale and duration from the mvhd payload.
// Version 0 carries 32-bit times, version 1 64-bit.
func parseMovieHeader(r io.Reader) (int, error) {
	var versionFlags [4]byte
	if _, err := io.ReadFull(r, versionFlags[:]); err != nil {
		return 0, err
	}

	var timescale uint32
	var duration uint64

	switch versionFlags[0] {
	case 0:
		var body [16]byte // creation(4) modification(4) timescale(4) duration(4)
		if _, err := io.ReadFull(r, body[:]); err != nil {
			return 0, err
		}
		timescale = binary.BigEndian.Uint32(body[8:12])
		duration = uint64(binary.BigEndian.Uint32(body[12:16]))
	case 1:
		var body [28]byte // creation(8) modification(8) timescale(4) duration(8)
		if _, err := io.ReadFull(r, body[:]); err != nil {
			return 0, err
		}
		timescale = binary.BigEndian.Uint32(body[16:20])
		duration = binary.BigEndian.Uint64(body[20:28])
	default:
		return 0, errNoMovieHeader
	}

	if timescale == 0 {
		return 0, errNoMovieHeader
	}
	return int(duration / uint64(timescale)), nil
}

// readBoxHeader returns the box type and remaining payload size.
func readBoxHeader(r io.Reader) (string, int64, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return "", 0, err
	}

	size := int64(binary.BigEndian.Uint32(header[0:4]))
	boxType := string(header[4:8])

	switch size {
	case 1:
		var large [8]byte
		if _, err := io.ReadFull(r, large[:]); err != nil {
			return "", 0, err
		}
		size = int64(binary.BigEndian.Uint64(large[:]))
		return boxType, size - 16, nil
	case 0:
		// box extends to end of stream
		return boxType, 1<<62 - 1, nil
	default:
		if size < 8 {
			return "", 0, errNoMovieHeader
		}
		return boxType, size - 8, nil
	}
}

func discard(r io.Reader, n int64) error {
	_, err := io.CopyN(io.Discard, r, n)
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
