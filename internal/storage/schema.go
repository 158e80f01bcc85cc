package storage

const schema = `
-- The 'problems' table stores one row per tracked practice problem.
-- AUTOINCREMENT keeps rowids from being reused after a delete.
CREATE TABLE IF NOT EXISTS problems (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT NOT NULL CHECK (length(description) > 0),
    link TEXT,
    category TEXT,
    pattern TEXT,
    difficulty TEXT,
    time_to_solve_1st INTEGER,
    time_to_solve_2nd INTEGER,
    time_to_solve_3rd INTEGER,
    comments TEXT,
    should_solve_again INTEGER NOT NULL DEFAULT 0
);
`
