// Package pgfake is an in-memory stand-in for PostgreSQL that understands the
// statements in internal/sqlinline. It is used by tests across packages.
package pgfake

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"pixelforge/internal/domain"
)

type DB struct {
	mu     sync.Mutex
	users  map[string]domain.User
	images []domain.Image
	tokens map[string]string

	// Now stamps created_at columns.
	Now func() time.Time
	// FailImageInsert makes every images insert fail with this error.
	FailImageInsert error
}

func New() *DB {
	return &DB{
		users:  make(map[string]domain.User),
		tokens: make(map[string]string),
		Now:    time.Now,
	}
}

// AddUser seeds a user and returns its ID.
func (d *DB) AddUser(email string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.Now()
	u := domain.User{ID: uuid.NewString(), Email: email, CreatedAt: now, UpdatedAt: now}
	d.users[u.ID] = u
	return u.ID
}

// Images returns a copy of every stored image in insertion order.
func (d *DB) Images() []domain.Image {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.Image(nil), d.images...)
}

// SetToken stores an integration token directly.
func (d *DB) SetToken(provider, token string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tokens[provider] = token
}

func (d *DB) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch {
	case strings.Contains(query, "insert into integration_tokens"):
		d.tokens[args[0].(string)] = args[1].(string)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	case strings.Contains(query, "delete from integration_tokens"):
		provider := args[0].(string)
		if _, ok := d.tokens[provider]; !ok {
			return pgconn.NewCommandTag("DELETE 0"), nil
		}
		delete(d.tokens, provider)
		return pgconn.NewCommandTag("DELETE 1"), nil
	}
	return pgconn.CommandTag{}, fmt.Errorf("pgfake: unsupported exec: %s", query)
}

func (d *DB) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch {
	case strings.Contains(query, "insert into images"):
		return d.insertImage(args)
	case strings.Contains(query, "insert into users"):
		return d.upsertUser(args[0].(string), args[1].(string))
	case strings.Contains(query, "from users") && strings.Contains(query, "where email"):
		for _, u := range d.users {
			if u.Email == args[0].(string) {
				return userRow(u)
			}
		}
		return Row{Err: pgx.ErrNoRows}
	case strings.Contains(query, "from users") && strings.Contains(query, "where id"):
		if u, ok := d.users[args[0].(string)]; ok {
			return userRow(u)
		}
		return Row{Err: pgx.ErrNoRows}
	case strings.Contains(query, "from integration_tokens"):
		if token, ok := d.tokens[args[0].(string)]; ok {
			return Row{Values: []any{token}}
		}
		return Row{Err: pgx.ErrNoRows}
	}
	return Row{Err: fmt.Errorf("pgfake: unsupported query_row: %s", query)}
}

func (d *DB) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !strings.Contains(query, "from images") {
		return nil, fmt.Errorf("pgfake: unsupported query: %s", query)
	}
	userID := args[0].(string)
	var matched []domain.Image
	for _, img := range d.images {
		if img.UserID == userID {
			matched = append(matched, img)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})
	rows := &Rows{}
	for _, img := range matched {
		rows.Data = append(rows.Data, []any{img.ID, img.UserID, img.Prompt, img.ImageURL, img.Style, img.Size, img.CreatedAt})
	}
	return rows, nil
}

func (d *DB) insertImage(args []any) pgx.Row {
	if d.FailImageInsert != nil {
		return Row{Err: d.FailImageInsert}
	}
	img := domain.Image{
		ID:        args[0].(string),
		UserID:    args[1].(string),
		Prompt:    args[2].(string),
		ImageURL:  args[3].(string),
		Style:     args[4].(string),
		Size:      args[5].(string),
		CreatedAt: d.Now(),
	}
	if _, ok := d.users[img.UserID]; !ok {
		return Row{Err: &pgconn.PgError{Code: "23503", ConstraintName: "fk_images_user"}}
	}
	d.images = append(d.images, img)
	return Row{Values: []any{img.CreatedAt}}
}

func (d *DB) upsertUser(email, name string) pgx.Row {
	now := d.Now()
	for id, u := range d.users {
		if u.Email == email {
			if name != "" {
				u.Name = name
			}
			u.UpdatedAt = now
			d.users[id] = u
			return userRow(u)
		}
	}
	u := domain.User{ID: uuid.NewString(), Email: email, Name: name, CreatedAt: now, UpdatedAt: now}
	d.users[u.ID] = u
	return userRow(u)
}

func userRow(u domain.User) Row {
	return Row{Values: []any{u.ID, u.Email, u.Name, u.CreatedAt, u.UpdatedAt}}
}

// Row is a canned pgx.Row.
type Row struct {
	Values []any
	Err    error
}

func (r Row) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return assign(dest, r.Values)
}

// Rows is a canned pgx.Rows over Data.
type Rows struct {
	Data   [][]any
	pos    int
	closed bool
}

func (r *Rows) Close()                                       { r.closed = true }
func (r *Rows) Err() error                                   { return nil }
func (r *Rows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *Rows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *Rows) RawValues() [][]byte                          { return nil }
func (r *Rows) Conn() *pgx.Conn                              { return nil }

func (r *Rows) Next() bool {
	if r.closed || r.pos >= len(r.Data) {
		return false
	}
	r.pos++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	return assign(dest, r.Data[r.pos-1])
}

func (r *Rows) Values() ([]any, error) {
	return r.Data[r.pos-1], nil
}

func assign(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("pgfake: scan %d targets for %d values", len(dest), len(values))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			v, ok := values[i].(string)
			if !ok {
				return fmt.Errorf("pgfake: column %d is %T, not string", i, values[i])
			}
			*p = v
		case *time.Time:
			v, ok := values[i].(time.Time)
			if !ok {
				return fmt.Errorf("pgfake: column %d is %T, not time", i, values[i])
			}
			*p = v
		default:
			return fmt.Errorf("pgfake: unsupported scan target %T", d)
		}
	}
	return nil
}
