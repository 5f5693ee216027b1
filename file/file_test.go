package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pngstash/pngstash/chunk"
	"github.com/pngstash/pngstash/png"
)

func writeTestPng(t *testing.T) string {
	t.Helper()

	tc, err := chunk.TypeFromString("FrSt")
	assert.Nil(t, err)

	p := png.FromChunks([]*chunk.Chunk{chunk.New(tc, []byte("I am the first chunk"))})
	path := filepath.Join(t.TempDir(), "test.png")
	assert.Nil(t, WritePng(path, p))
	return path
}

func TestWriteAndReadPng(t *testing.T) {
	path := writeTestPng(t)

	p, err := ReadPng(path)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(p.Chunks()))
	assert.NotNil(t, p.ChunkByType("FrSt"))
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadPng(filepath.Join(t.TempDir(), "nope.png"))
	assert.NotNil(t, err)
}

func TestReadGarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	assert.Nil(t, os.WriteFile(path, []byte("not a png at all"), 0644))

	_, err := ReadPng(path)
	assert.ErrorIs(t, err, png.ErrBadSignature)
}

func TestUpdatePng(t *testing.T) {
	path := writeTestPng(t)

	err := UpdatePng(path, func(p *png.Png) error {
		tc, err := chunk.TypeFromString("TeSt")
		if err != nil {
			return err
		}
		p.AppendChunk(chunk.New(tc, []byte("Message")))
		return nil
	})
	assert.Nil(t, err)

	p, err := ReadPng(path)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(p.Chunks()))
	assert.NotNil(t, p.ChunkByType("TeSt"))

	// lock file is cleaned up afterwards
	_, err = os.Stat(path + ".lock")
	assert.True(t, os.IsNotExist(err))
}

func TestUpdateLeavesFileAloneOnError(t *testing.T) {
	path := writeTestPng(t)
	before, err := os.ReadFile(path)
	assert.Nil(t, err)

	err = UpdatePng(path, func(p *png.Png) error {
		_, err := p.RemoveFirstChunk("noPe")
		return err
	})
	assert.ErrorIs(t, err, png.ErrChunkNotFound)

	after, err := os.ReadFile(path)
	assert.Nil(t, err)
	assert.Equal(t, before, after)
}
