package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/repository"

	"github.com/lib/pq"
)

type clubRepository struct {
	db *sql.DB
}

func NewClubRepository(db *sql.DB) repository.ClubRepository {
	return &clubRepository{db: db}
}

const clubColumns = `id, cid, cname, caname, cpname, cshortname, cmail, cmobile, password_hash, cdescription, cdate, cachievement, clogo, csocial, cmembers, cfund`

func scanClub(row interface{ Scan(...any) error }) (*domain.Club, error) {
	c := &domain.Club{}
	var founded sql.NullTime
	err := row.Scan(&c.ID, &c.CID, &c.Name, &c.AdvisorName, &c.President, &c.ShortName,
		&c.Email, &c.Mobile, &c.PasswordHash, &c.Description, &founded, &c.Achievement,
		&c.LogoURL, &c.Social, pq.Array(&c.Members), &c.Fund)
	if err != nil {
		return nil, mapError(err)
	}
	if founded.Valid {
		d := founded.Time.Format("2006-01-02")
		c.FoundedOn = &d
	}
	if c.Members == nil {
		c.Members = []int64{}
	}
	return c, nil
}

func (r *clubRepository) Create(ctx context.Context, c *domain.Club) error {
	query := `INSERT INTO clubs (cid, cname, caname, cpname, cshortname, cmail, cmobile, password_hash, cdescription, cdate, cachievement, clogo, csocial, cmembers, cfund)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, c.CID, c.Name, c.AdvisorName, c.President, c.ShortName,
		c.Email, c.Mobile, c.PasswordHash, c.Description, nullDate(c.FoundedOn), c.Achievement,
		c.LogoURL, c.Social, pq.Array(c.Members), c.Fund).Scan(&c.ID)
	return mapError(err)
}

func (r *clubRepository) GetByID(ctx context.Context, id int64) (*domain.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE id = $1`
	return scanClub(r.db.QueryRowContext(ctx, query, id))
}

func (r *clubRepository) GetByCID(ctx context.Context, cid int64) (*domain.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE cid = $1`
	return scanClub(r.db.QueryRowContext(ctx, query, cid))
}

func (r *clubRepository) Update(ctx context.Context, c *domain.Club) error {
	query := `UPDATE clubs SET caname=$1, cpname=$2, cmail=$3, cmobile=$4, cdescription=$5, cdate=$6, cachievement=$7, clogo=$8, csocial=$9, cmembers=$10, cfund=$11 WHERE id=$12`
	_, err := r.db.ExecContext(ctx, query, c.AdvisorName, c.President, c.Email, c.Mobile,
		c.Description, nullDate(c.FoundedOn), c.Achievement, c.LogoURL, c.Social,
		pq.Array(c.Members), c.Fund, c.ID)
	return mapError(err)
}

func (r *clubRepository) UpdateProfile(ctx context.Context, cid int64, upd *domain.ClubUpdate) (*domain.Club, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, val *string) {
		if val != nil {
			args = append(args, *val)
			sets = append(sets, fmt.Sprintf("%s=$%d", col, len(args)))
		}
	}
	add("caname", upd.AdvisorName)
	add("cpname", upd.President)
	add("cmail", upd.Email)
	add("cmobile", upd.Mobile)
	add("cdescription", upd.Description)
	add("cachievement", upd.Achievement)
	add("csocial", upd.Social)
	add("clogo", upd.LogoURL)
	if upd.FoundedOn != nil {
		args = append(args, nullDate(upd.FoundedOn))
		sets = append(sets, fmt.Sprintf("cdate=$%d", len(args)))
	}

	if len(sets) == 0 {
		return r.GetByCID(ctx, cid)
	}

	args = append(args, cid)
	query := fmt.Sprintf(`UPDATE clubs SET %s WHERE cid=$%d RETURNING `+clubColumns,
		strings.Join(sets, ", "), len(args))
	return scanClub(r.db.QueryRowContext(ctx, query, args...))
}

func (r *clubRepository) AdminUpdate(ctx context.Context, id int64, upd *domain.ClubAdminUpdate) (*domain.Club, error) {
	sets := []string{}
	args := []any{}
	add := func(col string, val *string) {
		if val != nil {
			args = append(args, *val)
			sets = append(sets, fmt.Sprintf("%s=$%d", col, len(args)))
		}
	}
	add("cname", upd.Name)
	add("cshortname", upd.ShortName)
	add("cmail", upd.Email)
	add("cmobile", upd.Mobile)
	add("cdescription", upd.Description)
	if upd.FoundedOn != nil {
		args = append(args, nullDate(upd.FoundedOn))
		sets = append(sets, fmt.Sprintf("cdate=$%d", len(args)))
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE clubs SET %s WHERE id=$%d RETURNING `+clubColumns,
		strings.Join(sets, ", "), len(args))
	return scanClub(r.db.QueryRowContext(ctx, query, args...))
}

func (r *clubRepository) List(ctx context.Context) ([]domain.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs ORDER BY cname`
	return r.queryClubs(ctx, query)
}

func (r *clubRepository) ListByCIDs(ctx context.Context, cids []int64) ([]domain.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE cid = ANY($1) ORDER BY cname`
	return r.queryClubs(ctx, query, pq.Array(cids))
}

func (r *clubRepository) SearchByCIDs(ctx context.Context, cids []int64, search string) ([]domain.Club, error) {
	if search == "" {
		return r.ListByCIDs(ctx, cids)
	}
	args := []any{pq.Array(cids), "%" + search + "%"}
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE cid = ANY($1) AND (cname ILIKE $2 OR cshortname ILIKE $2`
	if n, err := strconv.ParseInt(search, 10, 64); err == nil {
		args = append(args, n)
		query += ` OR cid = $3`
	}
	query += `) ORDER BY cname`
	return r.queryClubs(ctx, query, args...)
}

// SearchWithRecruiting reproduces the admin listing: every club matched
// by the search term, with a derived flag for whether it has an open
// recruitment drive, optionally filtered on that flag.
func (r *clubRepository) SearchWithRecruiting(ctx context.Context, search string, recruiting *bool) ([]domain.Club, error) {
	args := []any{}
	where := []string{}
	if search != "" {
		args = append(args, "%"+search+"%")
		cond := fmt.Sprintf("(c.cname ILIKE $%d", len(args))
		if n, err := strconv.ParseInt(search, 10, 64); err == nil {
			args = append(args, n)
			cond += fmt.Sprintf(" OR c.cid = $%d", len(args))
		}
		where = append(where, cond+")")
	}

	query := `SELECT ` + prefixColumns("c", clubColumns) + `,
	       EXISTS (SELECT 1 FROM recruitments r WHERE r.club_id = c.id AND r.status = 'yes') AS is_recruiting
	  FROM clubs c`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY c.cname`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var clubs []domain.Club
	for rows.Next() {
		c := domain.Club{}
		var founded sql.NullTime
		err := rows.Scan(&c.ID, &c.CID, &c.Name, &c.AdvisorName, &c.President, &c.ShortName,
			&c.Email, &c.Mobile, &c.PasswordHash, &c.Description, &founded, &c.Achievement,
			&c.LogoURL, &c.Social, pq.Array(&c.Members), &c.Fund, &c.IsRecruiting)
		if err != nil {
			return nil, mapError(err)
		}
		if founded.Valid {
			d := founded.Time.Format("2006-01-02")
			c.FoundedOn = &d
		}
		if c.Members == nil {
			c.Members = []int64{}
		}
		if recruiting != nil && c.IsRecruiting != *recruiting {
			continue
		}
		clubs = append(clubs, c)
	}
	return clubs, rows.Err()
}

func (r *clubRepository) ListRecent(ctx context.Context, limit int) ([]domain.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs ORDER BY cdate DESC NULLS LAST LIMIT $1`
	return r.queryClubs(ctx, query, limit)
}

func (r *clubRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clubs`).Scan(&count)
	return count, mapError(err)
}

func (r *clubRepository) queryClubs(ctx context.Context, query string, args ...any) ([]domain.Club, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var clubs []domain.Club
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, *c)
	}
	return clubs, rows.Err()
}

// nullDate converts an optional YYYY-MM-DD string into a driver value.
func nullDate(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", *s); err == nil {
		return t
	}
	return nil
}

// prefixColumns qualifies every column in a comma-separated list with
// a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = alias + "." + p
	}
	return strings.Join(parts, ", ")
}
