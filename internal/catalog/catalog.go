package catalog

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kacchi-backend/internal/models"
)

// Catalog keeps an in-memory view of the packages collection and pushes row
// updates to subscribers. A load failure leaves the view empty; the next
// successful Load repopulates it.
type Catalog struct {
	db *mongo.Database

	mu       sync.RWMutex
	packages []models.Package
	subs     map[chan models.Package]struct{}
}

func New(db *mongo.Database) *Catalog {
	return &Catalog{
		db:   db,
		subs: make(map[chan models.Package]struct{}),
	}
}

// Load fetches every package, normalizes it and stores the canonical list.
// On failure the catalog surfaces empty and the condition is logged; there
// is no retry.
func (c *Catalog) Load(ctx context.Context) []models.Package {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := c.db.Collection("packages").Find(ctx, bson.M{})
	if err != nil {
		log.Println("[CATALOG] [ERROR] package load failed:", err)
		return nil
	}
	defer cursor.Close(ctx)

	var raw []models.Package
	if err := cursor.All(ctx, &raw); err != nil {
		log.Println("[CATALOG] [ERROR] package decode failed:", err)
		return nil
	}

	packages := make([]models.Package, 0, len(raw))
	for _, pkg := range raw {
		packages = append(packages, Normalize(pkg))
	}
	SortCanonical(packages)

	c.mu.Lock()
	c.packages = packages
	c.mu.Unlock()

	return c.Snapshot()
}

// Snapshot returns a copy of the current canonical list.
func (c *Catalog) Snapshot() []models.Package {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Package, len(c.packages))
	copy(out, c.packages)
	return out
}

// Subscribe registers a channel that receives normalized package rows as
// they change. The caller must Unsubscribe on teardown; a slow subscriber
// has events dropped rather than blocking the watcher.
func (c *Catalog) Subscribe() chan models.Package {
	ch := make(chan models.Package, 8)
	c.mu.Lock()
	c.subs[ch] = struct{}{}
	c.mu.Unlock()
	return ch
}

func (c *Catalog) Unsubscribe(ch chan models.Package) {
	c.mu.Lock()
	if _, ok := c.subs[ch]; ok {
		delete(c.subs, ch)
		close(ch)
	}
	c.mu.Unlock()
}

func (c *Catalog) apply(pkg models.Package) models.Package {
	c.mu.Lock()
	c.packages = Apply(c.packages, pkg)
	normalized := Normalize(pkg)
	for ch := range c.subs {
		select {
		case ch <- normalized:
		default:
		}
	}
	c.mu.Unlock()
	return normalized
}

// Watch follows the packages change stream until ctx is cancelled, merging
// updated rows into the in-memory list. Requires a replica set; when change
// streams are unavailable the catalog degrades to load-on-request.
func (c *Catalog) Watch(ctx context.Context) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"operationType": bson.M{"$in": []string{"insert", "update", "replace"}},
		}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	stream, err := c.db.Collection("packages").Watch(ctx, pipeline, opts)
	if err != nil {
		log.Println("[CATALOG] [ERROR] change stream unavailable:", err)
		return
	}
	defer stream.Close(ctx)

	log.Println("[CATALOG] [INFO] watching package changes")
	for stream.Next(ctx) {
		var event struct {
			FullDocument models.Package `bson:"fullDocument"`
		}
		if err := stream.Decode(&event); err != nil {
			log.Println("[CATALOG] [ERROR] change event decode failed:", err)
			continue
		}
		if event.FullDocument.ID.IsZero() {
			continue
		}
		c.apply(event.FullDocument)
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		log.Println("[CATALOG] [ERROR] change stream closed:", err)
	}
}
