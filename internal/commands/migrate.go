package commands

import (
	"fmt"
	"log"

	"bizops/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "CREATE TYPE \"user_role\" AS ENUM",
		Query: `
        CREATE TYPE "user_role" AS ENUM ('SUPERADMIN', 'LEADER', 'ADMIN', 'STAFF', 'VIEWER');`,
	},
	{
		Index:       2,
		Description: "Create table: groups.",
		Query: `
        CREATE TABLE IF NOT EXISTS groups (
            id serial primary key,
            name text not null,
            description text,
            created_at timestamp default now(),
            created_by int,
            updated_at timestamp,
            updated_by int,
            deleted_at timestamp,
            deleted_by int
        );`,
	},
	{
		Index:       3,
		Description: "Create table: users.",
		Query: `
        CREATE TABLE IF NOT EXISTS users (
            id serial primary key,
            email text not null,
            password text not null,
            full_name text,
            role user_role,
            job_position text,
            status text default 'active',
            group_id int references groups(id),
            phone_number text,
            address text,
            avatar_url text,
            date_of_birth date,
            start_work_date date,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       4,
		Description: "Seed superadmin with email: admin@bizops.local, password: 1",
		Query: `
        INSERT INTO users(email, role, full_name, password)
        SELECT 'admin@bizops.local', 'SUPERADMIN', 'Super Admin', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2'
        WHERE NOT EXISTS (SELECT email FROM users WHERE email = 'admin@bizops.local');
        `,
	},
	{
		Index:       5,
		Description: "Create table: devices.",
		Query: `
        CREATE TABLE IF NOT EXISTS devices (
            id serial primary key,
            device_id text not null,
            imei text not null,
            brand text,
            model text,
            group_id int references groups(id),
            google_account text,
            status text,
            photo_url text,
            purchase_date date,
            purchase_price numeric(18,2),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       6,
		Description: "Create table: accounts.",
		Query: `
        CREATE TABLE IF NOT EXISTS accounts (
            id serial primary key,
            platform text not null,
            username text not null,
            email text,
            phone_number text,
            group_id int references groups(id),
            status text,
            profile_link text,
            notes text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       7,
		Description: "Create table: assets.",
		Query: `
        CREATE TABLE IF NOT EXISTS assets (
            id serial primary key,
            asset_name text not null,
            category text,
            condition text,
            quantity int,
            purchase_date date,
            purchase_price numeric(18,2),
            total_value numeric(18,2),
            photo_url text,
            description text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       8,
		Description: "Create table: attendance. One row per employee per work day.",
		Query: `
        CREATE TABLE IF NOT EXISTS attendance (
            id serial primary key,
            employee_id int not null references users(id),
            work_day date not null,
            clock_in timestamp,
            clock_out timestamp,
            duration_minutes int,
            status text default 'present',
            notes text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id),
            UNIQUE (employee_id, work_day)
        );`,
	},
	{
		Index:       9,
		Description: "Create table: daily_reports. One row per employee per date per shift.",
		Query: `
        CREATE TABLE IF NOT EXISTS daily_reports (
            id serial primary key,
            employee_id int not null references users(id),
            report_date date not null,
            shift int not null,
            group_id int references groups(id),
            device_id int references devices(id),
            account_id int references accounts(id),
            product_category text,
            live_status text default 'normal',
            starting_sales numeric(18,2) not null,
            ending_sales numeric(18,2) not null,
            total_sales numeric(18,2) not null,
            opening_balance numeric(18,2),
            closing_balance numeric(18,2),
            total_revenue numeric(18,2),
            gross_commission numeric(18,2),
            notes text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id),
            UNIQUE (employee_id, report_date, shift)
        );`,
	},
	{
		Index:       10,
		Description: "Create table: commissions.",
		Query: `
        CREATE TABLE IF NOT EXISTS commissions (
            id serial primary key,
            account_id int references accounts(id),
            employee_id int not null references users(id),
            group_id int references groups(id),
            commission_date date not null,
            period_week text,
            period_month int,
            period_year int,
            gross_commission numeric(18,2),
            net_commission numeric(18,2),
            disbursed_commission numeric(18,2),
            disbursement_date date,
            commission_rate numeric(8,4),
            notes text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       11,
		Description: "Create table: cashflow.",
		Query: `
        CREATE TABLE IF NOT EXISTS cashflow (
            id serial primary key,
            transaction_date date not null,
            type text not null,
            category text,
            amount numeric(18,2) not null,
            description text,
            group_id int references groups(id),
            proof_link text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       12,
		Description: "Indexes for the hot report and commission lookups.",
		Query: `
        CREATE INDEX IF NOT EXISTS idx_daily_reports_group_date ON daily_reports (group_id, report_date, shift);
        CREATE INDEX IF NOT EXISTS idx_commissions_period ON commissions (period_year, period_month, period_week);
        CREATE INDEX IF NOT EXISTS idx_attendance_work_day ON attendance (work_day);`,
	},
}

// Migrate creates the scheme in the database.
func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Query(s.Query); err != nil {
			log.Fatalln("migrate error", err)
		}
	}
}

func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
