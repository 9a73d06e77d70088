package common

import (
	"encoding/gob"
	"io"
	"os"
)

// Serialiser moves a list of values over a gob stream. Components
// that own nested state implement Serialisable and recurse; plain
// values go straight to the codec.
//
// Gob omits zero values at the top level, so DeSerialise callers must
// hand it zero-valued destinations (decode into fresh locals, then
// assign) or an omitted value silently keeps whatever was there.
type Serialiser interface {
	Serialise(elem ...interface{}) error
	DeSerialise(elem ...interface{}) error
}

type Serialisable interface {
	Serialise(e Serialiser) error
	DeSerialise(e Serialiser) error
}

func NewSerialiser(file *os.File) Serialiser {
	return &gobSerialiser{
		encoder: gob.NewEncoder(file),
		decoder: gob.NewDecoder(file),
	}
}

// NewSerialiserBuf works over any stream, eg a bytes.Buffer for
// in-memory snapshots handed back to the embedder.
func NewSerialiserBuf(rw io.ReadWriter) Serialiser {
	return &gobSerialiser{
		encoder: gob.NewEncoder(rw),
		decoder: gob.NewDecoder(rw),
	}
}

type gobSerialiser struct {
	encoder *gob.Encoder
	decoder *gob.Decoder
}

func (g *gobSerialiser) Serialise(elems ...interface{}) error {
	for _, elem := range elems {
		var err error
		if s, ok := elem.(Serialisable); ok {
			err = s.Serialise(g)
		} else {
			err = g.encoder.Encode(elem)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (g *gobSerialiser) DeSerialise(elems ...interface{}) error {
	for _, elem := range elems {
		var err error
		if s, ok := elem.(Serialisable); ok {
			err = s.DeSerialise(g)
		} else {
			err = g.decoder.Decode(elem)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
