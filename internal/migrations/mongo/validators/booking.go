package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"user_id",
			"vehicle_id",
			"start_date",
			"end_date",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"user_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"vehicle_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			// ISO dates kept as strings; ordering is not enforced.
			"start_date": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"end_date": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"instant_delivery": bson.M{
				"bsonType": "bool",
			},

			"subscription": bson.M{
				"bsonType": "string",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
