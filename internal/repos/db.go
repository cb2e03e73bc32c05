package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the catalog database, applies the schema, and seeds the demo
// tenants. With the default ":memory:" DSN the dataset is rebuilt on every
// start, which is the intended lifecycle: the catalog is generated at process
// start and read-only afterwards.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Extra demo tenant (idempotent; safe to run every start)
	if err := seedSoftwareStore(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Stores (tenants)
CREATE TABLE IF NOT EXISTS stores(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  logo TEXT,
  domain TEXT NOT NULL UNIQUE,
  theme_id TEXT NOT NULL,
  currency TEXT NOT NULL DEFAULT 'SAR',
  owner_id TEXT,
  plan TEXT NOT NULL DEFAULT 'FREE' CHECK (plan IN ('FREE','PRO','ENTERPRISE')),
  status TEXT NOT NULL DEFAULT 'ACTIVE' CHECK (status IN ('ACTIVE','SUSPENDED')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_stores_domain ON stores(LOWER(domain));

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  store_id TEXT NOT NULL REFERENCES stores(id) ON DELETE CASCADE,
  parent_id TEXT REFERENCES categories(id) ON DELETE SET NULL,
  name TEXT NOT NULL,
  description TEXT,
  image TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_categories_store ON categories(store_id);

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  store_id TEXT NOT NULL REFERENCES stores(id) ON DELETE CASCADE,
  category_id TEXT REFERENCES categories(id) ON DELETE SET NULL,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL CHECK (price >= 0),
  currency TEXT NOT NULL DEFAULT 'SAR',
  images_json TEXT,
  rating NUMERIC NOT NULL DEFAULT 0,
  review_count INTEGER NOT NULL DEFAULT 0,
  discount_percent INTEGER NOT NULL DEFAULT 0,
  tags_json TEXT,
  in_stock INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_store    ON products(store_id);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_name     ON products(LOWER(name));
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM stores`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo stores/categories/products")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO stores(id,name,description,logo,domain,theme_id,currency,owner_id,plan,status) VALUES
	  ('st-volt','Volt Electronics','Gadgets and accessories','media/stores/volt.png','volt.shopweaver.test','tech','SAR','own-1001','PRO','ACTIVE'),
	  ('st-luma','Luma Jewelry','Premium handcrafted pieces','media/stores/luma.png','luma.shopweaver.test','luxe','SAR','own-1002','ENTERPRISE','ACTIVE'),
	  ('st-brick','Brick and Giggle','Toys for every age','media/stores/brick.png','brick.shopweaver.test','toys','USD','own-1003','FREE','ACTIVE'),
	  ('st-haven','Haven Home','Kitchen and home appliances','media/stores/haven.png','haven.shopweaver.test','appliances','SAR','own-1004','PRO','SUSPENDED')`)

	tx.MustExec(`INSERT INTO categories(id,store_id,parent_id,name,description,image) VALUES
	  ('cat-audio','st-volt',NULL,'Audio','Headphones and speakers','media/cats/audio.jpg'),
	  ('cat-input','st-volt',NULL,'Input Devices','Keyboards and mice','media/cats/input.jpg'),
	  ('cat-earbuds','st-volt','cat-audio','Earbuds','In-ear audio','media/cats/earbuds.jpg'),
	  ('cat-rings','st-luma',NULL,'Rings','Gold and silver rings','media/cats/rings.jpg'),
	  ('cat-necklaces','st-luma',NULL,'Necklaces','Chains and pendants','media/cats/necklaces.jpg'),
	  ('cat-blocks','st-brick',NULL,'Building Blocks','Construction sets','media/cats/blocks.jpg'),
	  ('cat-plush','st-brick',NULL,'Plush','Soft toys','media/cats/plush.jpg'),
	  ('cat-kitchen','st-haven',NULL,'Kitchen','Countertop appliances','media/cats/kitchen.jpg')`)

	tx.MustExec(`INSERT INTO products(id,store_id,category_id,name,description,price,currency,images_json,rating,review_count,discount_percent,tags_json,in_stock) VALUES
	  ('p-anc-100','st-volt','cat-audio','ANC Headphones 100','Over-ear noise cancelling',299.00,'SAR','["products/p-anc-100/main.jpg"]',4.6,128,10,'["audio","wireless"]',1),
	  ('p-buds-20','st-volt','cat-earbuds','Pocket Buds 20','Compact true-wireless earbuds',149.50,'SAR','["products/p-buds-20/main.jpg"]',4.2,64,0,'["audio"]',1),
	  ('p-kb-75','st-volt','cat-input','Echo Keyboard 75','Hot-swappable 75% board',389.99,'SAR','["products/p-kb-75/main.jpg"]',4.8,310,0,'["keyboard"]',1),
	  ('p-mouse-8k','st-volt','cat-input','Flick Mouse 8K','Lightweight 8kHz mouse',219.00,'SAR','["products/p-mouse-8k/main.jpg"]',4.4,87,15,'["mouse"]',0),
	  ('p-ring-aur','st-luma','cat-rings','Aurora Ring','18k gold, hand set stones',1850.00,'SAR','["products/p-ring-aur/main.jpg"]',4.9,41,0,'["gold"]',1),
	  ('p-neck-sol','st-luma','cat-necklaces','Solis Necklace','Layered pendant chain',1234.50,'SAR','["products/p-neck-sol/main.jpg"]',4.7,22,5,'["gold","pendant"]',1),
	  ('p-set-castle','st-brick','cat-blocks','Castle Mega Set','612-piece castle build',79.99,'USD','["products/p-set-castle/main.jpg"]',4.5,210,0,'["blocks","8+"]',1),
	  ('p-plush-ori','st-brick','cat-plush','Orion the Owl','Extra-soft plush owl',24.00,'USD','["products/p-plush-ori/main.jpg"]',4.8,96,0,'["plush","3+"]',1),
	  ('p-blender-pro','st-haven','cat-kitchen','Blender Pro 900','900W glass-jar blender',329.00,'SAR','["products/p-blender-pro/main.jpg"]',4.1,58,20,'["kitchen"]',1)`)

	return tx.Commit()
}

// seedSoftwareStore adds a digital-goods tenant if missing (idempotent).
func seedSoftwareStore(db *sqlx.DB) error {
	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	_, _ = tx.Exec(`
		INSERT INTO stores(id,name,description,logo,domain,theme_id,currency,owner_id,plan,status)
		SELECT 'st-forge','Forge Tools','Developer licenses and utilities','media/stores/forge.png',
		       'forge.shopweaver.test','software','USD','own-1005','PRO','ACTIVE'
		WHERE NOT EXISTS (SELECT 1 FROM stores WHERE id='st-forge')
	`)
	_, _ = tx.Exec(`
		INSERT INTO categories(id,store_id,parent_id,name,description,image)
		SELECT 'cat-licenses','st-forge',NULL,'Licenses','Single-seat licenses','media/cats/licenses.jpg'
		WHERE NOT EXISTS (SELECT 1 FROM categories WHERE id='cat-licenses')
	`)
	_, _ = tx.Exec(`
		INSERT INTO products(id,store_id,category_id,name,description,price,currency,images_json,rating,review_count,discount_percent,tags_json,in_stock)
		SELECT 'p-lic-ide','st-forge','cat-licenses','ForgeIDE Annual','One-year single-seat license',
		       99.00,'USD','["products/p-lic-ide/box.png"]',4.3,540,0,'["license","annual"]',1
		WHERE NOT EXISTS (SELECT 1 FROM products WHERE id='p-lic-ide')
	`)

	return tx.Commit()
}
