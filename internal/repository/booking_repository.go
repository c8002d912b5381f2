package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dafatsq/ShuttleBook/internal/model"
)

// BookingRepo reads and appends booking records in the bookings
// collection.  The collection is schemaless; the repo assumes only the
// fields declared on model.Booking.  There is no uniqueness constraint
// on (date, courtId, slot) in the store, so the repo offers plain reads
// and appends and leaves conflict detection to the caller.
type BookingRepo struct {
	coll *mongo.Collection
}

// NewBookingRepo returns a BookingRepo bound to the given collection.
func NewBookingRepo(coll *mongo.Collection) *BookingRepo {
	return &BookingRepo{coll: coll}
}

// TakenSlots returns the union of slot labels across every booking
// recorded for the given date and court.  The result is a set: order
// and multiplicity are not preserved.  A failed read is reported as an
// error, never as an empty set, so callers can distinguish "no
// bookings" from "unknown".
func (r *BookingRepo) TakenSlots(ctx context.Context, date, courtID string) (map[string]struct{}, error) {
	cur, err := r.coll.Find(ctx, bson.M{"date": date, "courtId": courtID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	taken := make(map[string]struct{})
	for cur.Next(ctx) {
		var b model.Booking
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		for _, s := range b.Slots {
			taken[s] = struct{}{}
		}
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return taken, nil
}

// Insert appends one booking record.  The record id must already be
// set; the store records the write durably but gives no conflict
// guarantee relative to concurrent writers.
func (r *BookingRepo) Insert(ctx context.Context, b *model.Booking) error {
	_, err := r.coll.InsertOne(ctx, b)
	return err
}

// GetByID loads a single booking by its document id.  Missing records
// surface as ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var b model.Booking
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
