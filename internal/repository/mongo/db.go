package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI.
//
// A nil client is returned only when the client could not be built (bad URI,
// invalid options). If the client was built but the server did not answer the
// ping, the client is returned together with the ping error so the caller can
// keep serving; the driver reselects a server on every operation.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions(uri))
	if err != nil {
		return nil, err
	}

	// Ping the primary node to verify the connection.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return client, err
	}

	return client, nil
}

// clientOptions builds the options every client of this service connects with.
func clientOptions(uri string) *options.ClientOptions {
	return options.Client().ApplyURI(uri).SetBSONOptions(bsonOptions())
}

// bsonOptions makes embedded documents inside activities decode as maps, so
// they encode back to JSON objects instead of key/value pair arrays.
func bsonOptions() *options.BSONOptions {
	return &options.BSONOptions{DefaultDocumentM: true}
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}
