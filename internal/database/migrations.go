package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func RunMigrations(pool *pgxpool.Pool) error {
	ctx := context.Background()

	migrations := []string{
		createProfilesTable,
		createCylindersTable,
		createBatchCylindersTable,
		createReturnPenaltiesTable,
	}

	for i, migration := range migrations {
		log.Printf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Println("All migrations completed successfully")
	return nil
}

const createProfilesTable = `
CREATE TABLE IF NOT EXISTS profiles (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'private_user',
  client_link TEXT NOT NULL DEFAULT '',
  full_name TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  last_login_at TIMESTAMP WITH TIME ZONE
);

CREATE INDEX IF NOT EXISTS idx_profiles_email ON profiles(email);
CREATE INDEX IF NOT EXISTS idx_profiles_role ON profiles(role);
`

const createCylindersTable = `
CREATE TABLE IF NOT EXISTS cylinders (
  cylinder_id TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL DEFAULT '',
  capacity_kg NUMERIC(10,2) NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'Empty',
  current_location TEXT NOT NULL DEFAULT 'Testing Center',
  location_pin TEXT NOT NULL DEFAULT '',
  fill_percent REAL NOT NULL DEFAULT 0,
  last_fill_date DATE,
  last_test_date DATE,
  next_test_due DATE,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_cylinders_customer_name ON cylinders(customer_name);
CREATE INDEX IF NOT EXISTS idx_cylinders_status ON cylinders(status);
CREATE INDEX IF NOT EXISTS idx_cylinders_next_test_due ON cylinders(next_test_due);
`

const createBatchCylindersTable = `
CREATE TABLE IF NOT EXISTS batch_cylinders (
  cylinder_id TEXT PRIMARY KEY,
  batch_id TEXT NOT NULL DEFAULT '',
  customer_name TEXT NOT NULL DEFAULT '',
  capacity_kg NUMERIC(10,2) NOT NULL DEFAULT 0,
  status TEXT NOT NULL DEFAULT 'Empty',
  current_location TEXT NOT NULL DEFAULT 'Testing Center',
  location_pin TEXT NOT NULL DEFAULT '',
  fill_percent REAL NOT NULL DEFAULT 0,
  last_fill_date DATE,
  last_test_date DATE,
  next_test_due DATE,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_batch_cylinders_batch_id ON batch_cylinders(batch_id);
CREATE INDEX IF NOT EXISTS idx_batch_cylinders_customer_name ON batch_cylinders(customer_name);
CREATE INDEX IF NOT EXISTS idx_batch_cylinders_status ON batch_cylinders(status);
`

const createReturnPenaltiesTable = `
CREATE TABLE IF NOT EXISTS return_penalties (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  cylinder_id TEXT NOT NULL,
  customer_name TEXT NOT NULL,
  days_overdue INT NOT NULL DEFAULT 0,
  amount NUMERIC(12,3) NOT NULL DEFAULT 0,
  note TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_return_penalties_customer_name ON return_penalties(customer_name);
CREATE INDEX IF NOT EXISTS idx_return_penalties_cylinder_id ON return_penalties(cylinder_id);
`
