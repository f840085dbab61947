package appointmentRepo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"medibook/database"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	coll := database.MongoClient.Database("medibook").Collection("appointments")
	return &MongoAppointmentRepo{coll: coll}
}
