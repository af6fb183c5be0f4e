package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"clubhub-app/internal/codec"
	"clubhub-app/internal/metrics"
	"clubhub-app/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const pgUniqueViolation = "23505"

type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

// rebind rewrites ? placeholders into the dialect's form.
func (d dialect) rebind(query string) string {
	if d != dialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SQLStore keeps every entity as a JSON document in the documents table.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
	log     logrus.FieldLogger
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Seed inserts every entity of data that is not stored yet.
func (s *SQLStore) Seed(ctx context.Context, data Dataset) error {
	for _, t := range data.Teams {
		if err := s.seedDoc(ctx, KindTeam, t.ID, t); err != nil {
			return err
		}
	}
	for _, p := range data.Players {
		if err := s.seedDoc(ctx, KindPlayer, p.ID, p); err != nil {
			return err
		}
	}
	for _, c := range data.Categories {
		if err := s.seedDoc(ctx, KindCategory, c.ID, c); err != nil {
			return err
		}
	}
	for _, m := range data.Matches {
		if err := s.seedDoc(ctx, KindMatch, m.ID, toMatchRecord(m)); err != nil {
			return err
		}
	}
	for _, n := range data.News {
		if err := s.seedDoc(ctx, KindNews, n.ID, toNewsRecord(n)); err != nil {
			return err
		}
	}
	for _, p := range data.Products {
		if err := s.seedDoc(ctx, KindProduct, p.ID, toProductRecord(p)); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLStore) ListTeams(ctx context.Context) ([]model.Team, error) {
	return listPlain[model.Team](ctx, s, KindTeam)
}

func (s *SQLStore) GetTeam(ctx context.Context, id string) (model.Team, error) {
	return getPlain[model.Team](ctx, s, KindTeam, id)
}

func (s *SQLStore) ListPlayers(ctx context.Context) ([]model.Player, error) {
	return listPlain[model.Player](ctx, s, KindPlayer)
}

func (s *SQLStore) GetPlayer(ctx context.Context, id string) (model.Player, error) {
	return getPlain[model.Player](ctx, s, KindPlayer, id)
}

func (s *SQLStore) ListShopCategories(ctx context.Context) ([]model.ShopCategory, error) {
	return listPlain[model.ShopCategory](ctx, s, KindCategory)
}

func (s *SQLStore) ListMatches(ctx context.Context) ([]model.Match, error) {
	payloads, err := s.listDocs(ctx, KindMatch)
	if err != nil {
		return nil, err
	}
	matches := make([]model.Match, 0, len(payloads))
	for _, payload := range payloads {
		m, err := s.decodeMatch(payload)
		if err != nil {
			s.log.WithError(err).WithField("kind", KindMatch).Warn("skipping unreadable document")
			continue
		}
		matches = append(matches, m)
	}
	sortMatches(matches)
	return matches, nil
}

func (s *SQLStore) GetMatch(ctx context.Context, id string) (model.Match, error) {
	payload, err := s.getDoc(ctx, KindMatch, id)
	if err != nil {
		return model.Match{}, err
	}
	return s.decodeMatch(payload)
}

func (s *SQLStore) CreateMatch(ctx context.Context, match model.Match) (model.Result, error) {
	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	return s.create(ctx, KindMatch, match.ID, toMatchRecord(match))
}

func (s *SQLStore) UpdateMatch(ctx context.Context, id string, match model.Match) (model.Result, error) {
	match.ID = id
	return s.update(ctx, KindMatch, id, toMatchRecord(match))
}

func (s *SQLStore) DeleteMatch(ctx context.Context, id string) (model.Result, error) {
	return s.delete(ctx, KindMatch, id)
}

func (s *SQLStore) ListNews(ctx context.Context) ([]model.NewsArticle, error) {
	payloads, err := s.listDocs(ctx, KindNews)
	if err != nil {
		return nil, err
	}
	news := make([]model.NewsArticle, 0, len(payloads))
	for _, payload := range payloads {
		n, err := s.decodeNews(payload)
		if err != nil {
			s.log.WithError(err).WithField("kind", KindNews).Warn("skipping unreadable document")
			continue
		}
		news = append(news, n)
	}
	sortNews(news)
	return news, nil
}

func (s *SQLStore) GetNews(ctx context.Context, id string) (model.NewsArticle, error) {
	payload, err := s.getDoc(ctx, KindNews, id)
	if err != nil {
		return model.NewsArticle{}, err
	}
	return s.decodeNews(payload)
}

func (s *SQLStore) CreateNews(ctx context.Context, article model.NewsArticle) (model.Result, error) {
	if article.ID == "" {
		article.ID = uuid.NewString()
	}
	return s.create(ctx, KindNews, article.ID, toNewsRecord(article))
}

func (s *SQLStore) UpdateNews(ctx context.Context, id string, article model.NewsArticle) (model.Result, error) {
	article.ID = id
	return s.update(ctx, KindNews, id, toNewsRecord(article))
}

func (s *SQLStore) DeleteNews(ctx context.Context, id string) (model.Result, error) {
	return s.delete(ctx, KindNews, id)
}

func (s *SQLStore) ListShopItems(ctx context.Context) ([]model.ShopProduct, error) {
	payloads, err := s.listDocs(ctx, KindProduct)
	if err != nil {
		return nil, err
	}
	products := make([]model.ShopProduct, 0, len(payloads))
	for _, payload := range payloads {
		p, err := s.decodeProduct(payload)
		if err != nil {
			s.log.WithError(err).WithField("kind", KindProduct).Warn("skipping unreadable document")
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *SQLStore) GetShopItem(ctx context.Context, id string) (model.ShopProduct, error) {
	payload, err := s.getDoc(ctx, KindProduct, id)
	if err != nil {
		return model.ShopProduct{}, err
	}
	return s.decodeProduct(payload)
}

func (s *SQLStore) CreateShopItem(ctx context.Context, product model.ShopProduct) (model.Result, error) {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	return s.create(ctx, KindProduct, product.ID, toProductRecord(product))
}

func (s *SQLStore) UpdateShopItem(ctx context.Context, id string, product model.ShopProduct) (model.Result, error) {
	product.ID = id
	return s.update(ctx, KindProduct, id, toProductRecord(product))
}

func (s *SQLStore) DeleteShopItem(ctx context.Context, id string) (model.Result, error) {
	return s.delete(ctx, KindProduct, id)
}

func (s *SQLStore) decodeMatch(payload string) (model.Match, error) {
	var r matchRecord
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return model.Match{}, fmt.Errorf("decode match: %w", err)
	}
	m, issues := fromMatchRecord(r)
	s.reportIssues(KindMatch, m.ID, issues)
	return m, nil
}

func (s *SQLStore) decodeNews(payload string) (model.NewsArticle, error) {
	var r newsRecord
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return model.NewsArticle{}, fmt.Errorf("decode news: %w", err)
	}
	n, issues := fromNewsRecord(r)
	s.reportIssues(KindNews, n.ID, issues)
	return n, nil
}

func (s *SQLStore) decodeProduct(payload string) (model.ShopProduct, error) {
	var r productRecord
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return model.ShopProduct{}, fmt.Errorf("decode product: %w", err)
	}
	p, issues := fromProductRecord(r)
	s.reportIssues(KindProduct, p.ID, issues)
	return p, nil
}

func (s *SQLStore) reportIssues(kind, id string, issues []decodeIssue) {
	for _, issue := range issues {
		metrics.DecodeFallbacks.WithLabelValues(kind, issue.Field).Inc()
		s.log.WithFields(logrus.Fields{
			"kind":  kind,
			"id":    id,
			"field": issue.Field,
		}).WithError(issue.Err).Warn("nested field unreadable, using empty default")
	}
}

func listPlain[T any](ctx context.Context, s *SQLStore, kind string) ([]T, error) {
	payloads, err := s.listDocs(ctx, kind)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(payloads))
	for _, payload := range payloads {
		var item T
		if err := json.Unmarshal([]byte(payload), &item); err != nil {
			s.log.WithError(err).WithField("kind", kind).Warn("skipping unreadable document")
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func getPlain[T any](ctx context.Context, s *SQLStore, kind, id string) (T, error) {
	var item T
	payload, err := s.getDoc(ctx, kind, id)
	if err != nil {
		return item, err
	}
	if err := json.Unmarshal([]byte(payload), &item); err != nil {
		return item, fmt.Errorf("decode %s: %w", kind, err)
	}
	return item, nil
}

func (s *SQLStore) listDocs(ctx context.Context, kind string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.rebind(`SELECT payload FROM documents WHERE kind = ? ORDER BY id`), kind)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer rows.Close()

	payloads := []string{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan %s: %w", kind, err)
		}
		payloads = append(payloads, payload)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return payloads, nil
}

func (s *SQLStore) getDoc(ctx context.Context, kind, id string) (string, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, s.dialect.rebind(`SELECT payload FROM documents WHERE kind = ? AND id = ?`), kind, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %s %s: %w", kind, id, err)
	}
	return payload, nil
}

func (s *SQLStore) seedDoc(ctx context.Context, kind, id string, doc any) error {
	_, err := s.db.ExecContext(ctx, s.dialect.rebind(`INSERT INTO documents (kind, id, payload, schema_version, updated_at) VALUES (?,?,?,?,?) ON CONFLICT (kind, id) DO NOTHING`),
		kind, id, codec.Encode(doc), codec.SchemaVersion, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("seed %s %s: %w", kind, id, err)
	}
	return nil
}

func (s *SQLStore) create(ctx context.Context, kind, id string, doc any) (model.Result, error) {
	_, err := s.db.ExecContext(ctx, s.dialect.rebind(`INSERT INTO documents (kind, id, payload, schema_version, updated_at) VALUES (?,?,?,?,?)`),
		kind, id, codec.Encode(doc), codec.SchemaVersion, time.Now().UTC(),
	)
	if err != nil {
		metrics.StoreOperations.WithLabelValues(kind, "create", "error").Inc()
		if isUniqueViolation(err) {
			return model.Result{}, fmt.Errorf("create %s %s: %w", kind, id, ErrConflict)
		}
		return model.Result{}, fmt.Errorf("create %s: %w", kind, err)
	}
	metrics.StoreOperations.WithLabelValues(kind, "create", "ok").Inc()
	return model.Result{Success: true, Message: resultMessage(kind, "created"), ID: id}, nil
}

func (s *SQLStore) update(ctx context.Context, kind, id string, doc any) (model.Result, error) {
	res, err := s.db.ExecContext(ctx, s.dialect.rebind(`UPDATE documents SET payload = ?, schema_version = ?, updated_at = ? WHERE kind = ? AND id = ?`),
		codec.Encode(doc), codec.SchemaVersion, time.Now().UTC(), kind, id,
	)
	if err != nil {
		metrics.StoreOperations.WithLabelValues(kind, "update", "error").Inc()
		return model.Result{}, fmt.Errorf("update %s %s: %w", kind, id, err)
	}
	if err := checkAffected(res, kind, "update", id); err != nil {
		return model.Result{}, err
	}
	metrics.StoreOperations.WithLabelValues(kind, "update", "ok").Inc()
	return model.Result{Success: true, Message: resultMessage(kind, "updated"), ID: id}, nil
}

func (s *SQLStore) delete(ctx context.Context, kind, id string) (model.Result, error) {
	res, err := s.db.ExecContext(ctx, s.dialect.rebind(`DELETE FROM documents WHERE kind = ? AND id = ?`), kind, id)
	if err != nil {
		metrics.StoreOperations.WithLabelValues(kind, "delete", "error").Inc()
		return model.Result{}, fmt.Errorf("delete %s %s: %w", kind, id, err)
	}
	if err := checkAffected(res, kind, "delete", id); err != nil {
		return model.Result{}, err
	}
	metrics.StoreOperations.WithLabelValues(kind, "delete", "ok").Inc()
	return model.Result{Success: true, Message: resultMessage(kind, "deleted"), ID: id}, nil
}

// checkAffected maps an update or delete that touched no row to ErrNotFound.
func checkAffected(res sql.Result, kind, op, id string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		metrics.StoreOperations.WithLabelValues(kind, op, "error").Inc()
		return fmt.Errorf("%s %s %s: rows affected: %w", op, kind, id, err)
	}
	if rows == 0 {
		metrics.StoreOperations.WithLabelValues(kind, op, "not_found").Inc()
		return fmt.Errorf("%s %s %s: %w", op, kind, id, ErrNotFound)
	}
	return nil
}

// isUniqueViolation reports a duplicate key from either driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}
