/*
*	Copyright (c) 2023
*	John's Page All rights reserved.
*
*	Redistribution and use in source and binary forms, with or without
*	modification, are permitted provided that the following conditions
*	are met:
*
*	Redistributions of source code must retain the above copyright notice,
*	this list of conditions and the following disclaimer.
*
*	THIS SOFTWARE IS PROVIDED BY [Name of Organization] “AS IS” AND ANY EXPRESS
*	OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES
*	OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO
*	EVENT SHALL [Name of Organisation] BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
*	SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO,
*	PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS;
*	OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER
*	IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
*	ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY
*	OF SUCH DAMAGE.
 */

package gollections

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Writes the multiset as a compressed msgpack stream of
// (element, count) pairs
func SaveMultiset[E comparable](writer io.Writer, set *Multiset[E], compression Compression) error {
	var buffer bytes.Buffer
	encoder := msgpack.NewEncoder(&buffer)

	entries := set.store.Entries()
	if err := encoder.EncodeInt(int64(len(entries))); err != nil {
		return err
	}

	for _, entry := range entries {
		if err := encoder.Encode(entry.Key); err != nil {
			return err
		}
		if err := encoder.EncodeInt(int64(entry.Value)); err != nil {
			return err
		}
	}

	_, err := writer.Write(compression.Encode(buffer.Bytes()))
	return err
}

// Restores a multiset over the default store
func LoadMultiset[E comparable](reader io.Reader, compression Compression) (*Multiset[E], error) {
	return LoadMultisetWithStore(reader, compression, NewLinkedMapStore[E, int]())
}

// Restores a multiset into the given empty backing store, replaying
// each (element, count) pair through the normal mutation path
func LoadMultisetWithStore[E comparable](reader io.Reader, compression Compression, store MapStore[E, int]) (*Multiset[E], error) {
	decoder, err := snapshotDecoder(reader, compression)
	if err != nil {
		return nil, err
	}

	count, err := decoder.DecodeInt()
	if err != nil {
		return nil, err
	}

	set := NewMultisetWithStore(store)
	for i := 0; i < count; i++ {
		var element E
		if err := decoder.Decode(&element); err != nil {
			return nil, err
		}

		occurrences, err := decoder.DecodeInt()
		if err != nil {
			return nil, err
		}

		if _, err := set.AddCount(element, occurrences); err != nil {
			return nil, err
		}
	}

	return set, nil
}

// Writes the bimap as a compressed msgpack stream of its forward
// pairs. The backward direction is rebuilt on load, never persisted.
func SaveBiMap[K comparable, V comparable](writer io.Writer, m *BiMap[K, V], compression Compression) error {
	var buffer bytes.Buffer
	encoder := msgpack.NewEncoder(&buffer)

	entries := m.forward.Entries()
	if err := encoder.EncodeInt(int64(len(entries))); err != nil {
		return err
	}

	for _, entry := range entries {
		if err := encoder.Encode(entry.Key); err != nil {
			return err
		}
		if err := encoder.Encode(entry.Value); err != nil {
			return err
		}
	}

	_, err := writer.Write(compression.Encode(buffer.Bytes()))
	return err
}

// Restores a bimap over the default stores
func LoadBiMap[K comparable, V comparable](reader io.Reader, compression Compression) (*BiMap[K, V], error) {
	return LoadBiMapWithStores(reader, compression, NewLinkedMapStore[K, V](), NewLinkedMapStore[V, K]())
}

// Restores a bimap into the given empty backing stores. Each pair is
// replayed through Put, so a stream whose pairs break the bijection
// fails with ErrValueAlreadyPresent.
func LoadBiMapWithStores[K comparable, V comparable](reader io.Reader, compression Compression, forward MapStore[K, V], backward MapStore[V, K]) (*BiMap[K, V], error) {
	decoder, err := snapshotDecoder(reader, compression)
	if err != nil {
		return nil, err
	}

	count, err := decoder.DecodeInt()
	if err != nil {
		return nil, err
	}

	m := NewBiMapWithStores(forward, backward)
	for i := 0; i < count; i++ {
		var key K
		if err := decoder.Decode(&key); err != nil {
			return nil, err
		}

		var value V
		if err := decoder.Decode(&value); err != nil {
			return nil, err
		}

		if _, _, err := m.Put(key, value); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func snapshotDecoder(reader io.Reader, compression Compression) (*msgpack.Decoder, error) {
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	data, err := compression.Decode(raw)
	if err != nil {
		return nil, err
	}

	return msgpack.NewDecoder(bytes.NewReader(data)), nil
}

// Writes a multiset snapshot to <path>/<id>.snapshot, generating a
// fresh id when none is given. Returns the id.
func WriteMultisetSnapshotFile[E comparable](path string, id string, set *Multiset[E], compression Compression) (string, error) {
	if id == "" {
		id = uuid.New().String()
	}

	f, err := os.OpenFile(snapshotPath(path, id), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := SaveMultiset(f, set, compression); err != nil {
		return "", err
	}

	return id, nil
}

// Reads a multiset snapshot written by WriteMultisetSnapshotFile
func ReadMultisetSnapshotFile[E comparable](path string, id string, compression Compression) (*Multiset[E], error) {
	f, err := os.OpenFile(snapshotPath(path, id), os.O_RDONLY, 0644)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadMultiset[E](f, compression)
}

// Writes a bimap snapshot to <path>/<id>.snapshot, generating a fresh
// id when none is given. Returns the id.
func WriteBiMapSnapshotFile[K comparable, V comparable](path string, id string, m *BiMap[K, V], compression Compression) (string, error) {
	if id == "" {
		id = uuid.New().String()
	}

	f, err := os.OpenFile(snapshotPath(path, id), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := SaveBiMap(f, m, compression); err != nil {
		return "", err
	}

	return id, nil
}

// Reads a bimap snapshot written by WriteBiMapSnapshotFile
func ReadBiMapSnapshotFile[K comparable, V comparable](path string, id string, compression Compression) (*BiMap[K, V], error) {
	f, err := os.OpenFile(snapshotPath(path, id), os.O_RDONLY, 0644)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadBiMap[K, V](f, compression)
}

func DeleteSnapshot(path string, id string) {
	os.Remove(snapshotPath(path, id))
}

func snapshotPath(path string, id string) string {
	return filepath.Join(path, fmt.Sprintf("%s.snapshot", id))
}
