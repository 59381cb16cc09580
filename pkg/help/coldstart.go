package help

const ColdstartYAML = `# movie-costar Quick Start

corpus_format:
  line: "Title (Year)/Last, First/Last, First/..."
  skipped: "records whose year field holds a comma, e.g. (1990, 1991)"
  duplicates: "same title and year: first record wins"
  encoding: "windows-1252 by default (--encoding utf-8|latin-1)"

commands:
  full_report: |
    movie-costar analyze --corpus files/movies-mpaa.txt

  top_pairs_only: |
    movie-costar pairs --corpus files/movies-mpaa.txt --top 25 --format text

  several_files: |
    movie-costar analyze --corpus a.txt --corpus b.txt --workers 8

  sqlite_export: |
    movie-costar analyze --corpus files/movies-mpaa.txt --sqlite report.db
    sqlite3 report.db 'SELECT * FROM pairs ORDER BY shared_movies DESC LIMIT 10'

config:
  file: "--config config.yaml (keys: corpus, encoding, workers, top, format, output, sqlite)"
  env: "COSTAR_CORPUS, COSTAR_WORKERS, COSTAR_TOP, COSTAR_FORMAT, ... (.env is read at start-up)"
  precedence: "flags > env > config file > defaults"

pair_invariants:
  - "Each unordered pair is stored once, under the actor that sorts first (last name, then first name)"
  - "Counts are exact shared-movie counts, never zero"
  - "Results do not depend on --workers"
  - "Ties on the maximum pair keep the first pair in sorted owner order"

error_behavior:
  - "No co-starring pair in the corpus: error, exit code 1"
  - "Malformed line or empty cast: error naming file and line, exit code 1"
`
