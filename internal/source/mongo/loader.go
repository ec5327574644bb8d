// Package mongo loads class and spell documents from MongoDB and hands
// them to the in-memory document source. The database is read once per run;
// all derivation happens in-process.
package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"heronomics/internal/source"
)

const defaultDatabase = "heronomics"

const (
	classCollection = "classes"
	spellCollection = "spells"
)

// classRecord mirrors the stored class document shape.
type classRecord struct {
	Name          string   `bson:"name"`
	HitDie        int      `bson:"hit_die"`
	Proficiencies []string `bson:"proficiencies"`
	SavingThrows  []string `bson:"saving_throws"`
}

// spellRecord mirrors the stored spell document shape. Damage is kept raw;
// only its presence matters.
type spellRecord struct {
	Name          string   `bson:"name"`
	Level         int      `bson:"level"`
	Damage        bson.M   `bson:"damage,omitempty"`
	Components    []string `bson:"components"`
	Concentration bool     `bson:"concentration"`
	Classes       []string `bson:"classes"`
}

// Loader reads the document collections from one database.
type Loader struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewLoader connects to MongoDB and pings it. The URI may carry the
// database name in its path (e.g. mongodb://localhost:27017/heronomics);
// otherwise the default database is used.
func NewLoader(ctx context.Context, uri string) (*Loader, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	dbName := defaultDatabase
	if u, err := url.Parse(uri); err == nil {
		if name := strings.TrimPrefix(u.Path, "/"); name != "" {
			dbName = name
		}
	}

	return &Loader{client: client, db: client.Database(dbName)}, nil
}

// Close disconnects from MongoDB.
func (l *Loader) Close(ctx context.Context) error {
	return l.client.Disconnect(ctx)
}

// Load reads both collections and returns a document source over them.
func (l *Loader) Load(ctx context.Context) (*source.DocumentSource, error) {
	classes, err := l.loadClasses(ctx)
	if err != nil {
		return nil, err
	}
	spells, err := l.loadSpells(ctx)
	if err != nil {
		return nil, err
	}
	return source.NewDocumentSource(classes, spells), nil
}

func (l *Loader) loadClasses(ctx context.Context) ([]source.ClassDoc, error) {
	cursor, err := l.db.Collection(classCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find classes: %w", err)
	}

	var records []classRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode classes: %w", err)
	}

	docs := make([]source.ClassDoc, 0, len(records))
	for _, r := range records {
		docs = append(docs, source.ClassDoc{
			Name:          r.Name,
			HitDie:        r.HitDie,
			Proficiencies: r.Proficiencies,
			SavingThrows:  r.SavingThrows,
		})
	}
	return docs, nil
}

func (l *Loader) loadSpells(ctx context.Context) ([]source.SpellDoc, error) {
	cursor, err := l.db.Collection(spellCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find spells: %w", err)
	}

	var records []spellRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode spells: %w", err)
	}

	docs := make([]source.SpellDoc, 0, len(records))
	for _, r := range records {
		docs = append(docs, source.SpellDoc{
			Name:          r.Name,
			Level:         r.Level,
			Damaging:      len(r.Damage) > 0,
			Components:    r.Components,
			Concentration: r.Concentration,
			Classes:       r.Classes,
		})
	}
	return docs, nil
}
