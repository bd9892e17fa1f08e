// Package store implements host persistence for the sync engine: a small
// key-value contract ([KV]) with a SQLite backend and a JSON file backend.
package store
