package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

DROP TABLE IF EXISTS best_partners;
DROP TABLE IF EXISTS pairs;
DROP TABLE IF EXISTS run_stats;

-- Run stats: flat key/value summary of the run
CREATE TABLE run_stats (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

-- Pairs: one row per unordered actor pair, owner (actor_a) sorts first
CREATE TABLE pairs (
    pair_id INTEGER PRIMARY KEY AUTOINCREMENT,
    a_last_name TEXT NOT NULL,
    a_first_name TEXT NOT NULL,
    b_last_name TEXT NOT NULL,
    b_first_name TEXT NOT NULL,
    shared_movies INTEGER NOT NULL CHECK (shared_movies > 0),
    UNIQUE(a_last_name, a_first_name, b_last_name, b_first_name)
);

CREATE INDEX idx_pairs_count ON pairs(shared_movies DESC);

-- Best partners: for each owner, the partner with the most shared movies
CREATE TABLE best_partners (
    owner_last_name TEXT NOT NULL,
    owner_first_name TEXT NOT NULL,
    pair_id INTEGER NOT NULL,
    PRIMARY KEY (owner_last_name, owner_first_name),
    FOREIGN KEY (pair_id) REFERENCES pairs(pair_id) ON DELETE CASCADE
);
`
