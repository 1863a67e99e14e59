package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellnest/wellnest-server/internal/model"
	"github.com/wellnest/wellnest-server/internal/store"
)

const (
	usersCollection     = "users"
	moodsCollection     = "moods"
	healthCollection    = "userHealth"
	remindersCollection = "reminders"
)

// Open connects to MongoDB and verifies connectivity.
func Open(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo URI is empty")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// New wraps a database handle into a store.Store and ensures the indexes
// the daily-upsert and uniqueness rules depend on.
func New(ctx context.Context, db *mongo.Database) (store.Store, error) {
	s := &mongoStore{db: db}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

type mongoStore struct{ db *mongo.Database }

func (s *mongoStore) Users() store.Users         { return &users{c: s.db.Collection(usersCollection)} }
func (s *mongoStore) Moods() store.Moods         { return &moods{c: s.db.Collection(moodsCollection)} }
func (s *mongoStore) Health() store.Health       { return &health{c: s.db.Collection(healthCollection)} }
func (s *mongoStore) Reminders() store.Reminders { return &reminders{c: s.db.Collection(remindersCollection)} }

func (s *mongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

func (s *mongoStore) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	// Non-unique: createdAt is a full timestamp, not a day key, so this
	// index only serves the history sort. Same-day uniqueness for moods
	// rests on the UpsertDaily filter alone, unlike userHealth below where
	// the day column carries a unique key.
	_, err = s.db.Collection(moodsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("moods index: %w", err)
	}
	_, err = s.db.Collection(healthCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "day", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("userHealth index: %w", err)
	}
	_, err = s.db.Collection(remindersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "time", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("reminders index: %w", err)
	}
	return nil
}

// --- Users ---

type users struct{ c *mongo.Collection }

func (u *users) Create(ctx context.Context, m *model.User) (*model.User, error) {
	out := *m
	if out.UserID == "" {
		out.UserID = uuid.New().String()
	}
	now := time.Now().UTC()
	out.CreatedAt = now
	out.UpdatedAt = now
	if out.WellnessGoals == nil {
		out.WellnessGoals = []string{}
	}
	if _, err := u.c.InsertOne(ctx, &out); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, model.ErrDuplicateEmail
		}
		return nil, err
	}
	return &out, nil
}

func (u *users) GetByID(ctx context.Context, userID string) (*model.User, error) {
	var out model.User
	err := u.c.FindOne(ctx, bson.M{"userId": userID}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var out model.User
	err := u.c.FindOne(ctx, bson.M{"email": email}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *users) Update(ctx context.Context, userID string, upd model.UserUpdate) (*model.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Sport != nil {
		set["sport"] = *upd.Sport
	}
	if upd.Age != nil {
		set["age"] = *upd.Age
	}
	if upd.Gender != nil {
		set["gender"] = *upd.Gender
	}
	if upd.HeightCm != nil {
		set["heightCm"] = *upd.HeightCm
	}
	if upd.WeightKg != nil {
		set["weightKg"] = *upd.WeightKg
	}
	if upd.WellnessGoals != nil {
		set["wellnessGoals"] = *upd.WellnessGoals
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out model.User
	err := u.c.FindOneAndUpdate(ctx, bson.M{"userId": userID}, bson.M{"$set": set}, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Moods ---

type moods struct{ c *mongo.Collection }

func (m *moods) UpsertDaily(ctx context.Context, e *model.MoodEntry, dayStart, dayEnd time.Time) (*model.MoodEntry, error) {
	filter := bson.M{
		"userId":    e.UserID,
		"createdAt": bson.M{"$gte": dayStart, "$lt": dayEnd},
	}
	update := bson.M{
		"$set": bson.M{
			"mood":      e.Mood,
			"reason":    e.Reason,
			"sleep":     e.Sleep,
			"physical":  e.Physical,
			"updatedAt": e.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"entryId":   uuid.New().String(),
			"createdAt": e.CreatedAt,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var out model.MoodEntry
	if err := m.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *moods) ListByUser(ctx context.Context, userID string) ([]*model.MoodEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := m.c.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()
	var out []*model.MoodEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- Health ---

type health struct{ c *mongo.Collection }

func (h *health) UpsertDay(ctx context.Context, e *model.HealthEntry) (*model.HealthEntry, error) {
	filter := bson.M{"userId": e.UserID, "day": e.Day}
	update := bson.M{
		"$set": bson.M{
			"fatigueLevel": e.FatigueLevel,
			"sleepHours":   e.SleepHours,
			"sleepQuality": e.SleepQuality,
			"stress":       e.Stress,
		},
		"$setOnInsert": bson.M{
			"entryId": uuid.New().String(),
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var out model.HealthEntry
	if err := h.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *health) ListRange(ctx context.Context, userID string, from, to time.Time) ([]*model.HealthEntry, error) {
	filter := bson.M{
		"userId": userID,
		"day":    bson.M{"$gte": from, "$lt": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "day", Value: 1}})
	cur, err := h.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()
	var out []*model.HealthEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- Reminders ---

type reminders struct{ c *mongo.Collection }

func (r *reminders) Create(ctx context.Context, m *model.Reminder) (*model.Reminder, error) {
	out := *m
	if out.ReminderID == "" {
		out.ReminderID = uuid.New().String()
	}
	now := time.Now().UTC()
	out.CreatedAt = now
	out.UpdatedAt = now
	if out.Days == nil {
		out.Days = []string{}
	}
	if _, err := r.c.InsertOne(ctx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *reminders) GetByID(ctx context.Context, reminderID string) (*model.Reminder, error) {
	var out model.Reminder
	err := r.c.FindOne(ctx, bson.M{"reminderId": reminderID}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *reminders) ListByUser(ctx context.Context, userID string) ([]*model.Reminder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})
	cur, err := r.c.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()
	var out []*model.Reminder
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reminders) Update(ctx context.Context, reminderID string, upd model.ReminderUpdate) (*model.Reminder, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Time != nil {
		set["time"] = *upd.Time
	}
	if upd.Days != nil {
		set["days"] = *upd.Days
	}
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out model.Reminder
	err := r.c.FindOneAndUpdate(ctx, bson.M{"reminderId": reminderID}, bson.M{"$set": set}, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *reminders) SetLastCompleted(ctx context.Context, reminderID string, t time.Time) (*model.Reminder, error) {
	set := bson.M{"lastCompleted": t, "updatedAt": time.Now().UTC()}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out model.Reminder
	err := r.c.FindOneAndUpdate(ctx, bson.M{"reminderId": reminderID}, bson.M{"$set": set}, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *reminders) Delete(ctx context.Context, reminderID string) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"reminderId": reminderID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}
