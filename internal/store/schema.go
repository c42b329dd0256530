// Schema DDL for the scratch query engine. The JSON collection files are
// the source of truth; these tables are rebuilt from them on every Attach.
package store

// Insertion order (rowid) preserves the collection's array order.
const (
	createShops = `CREATE TABLE shops (
    shop_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    address TEXT NOT NULL,
    lat REAL NOT NULL,
    lng REAL NOT NULL,
    created_at INTEGER NOT NULL
);`

	createLogs = `CREATE TABLE logs (
    log_id TEXT PRIMARY KEY,
    shop_id TEXT NOT NULL,
    item_name TEXT NOT NULL,
    rating REAL NOT NULL,
    noodle_hardness TEXT NOT NULL,
    soup_concentration TEXT NOT NULL,
    back_fat TEXT NOT NULL,
    price INTEGER NOT NULL,
    queue_time INTEGER NOT NULL,
    notes TEXT NOT NULL,
    date INTEGER NOT NULL,
    has_kaedama INTEGER NOT NULL
);`
)

// schemaDDL lists the statements executed on Attach.
var schemaDDL = []string{
	createShops,
	createLogs,
}
