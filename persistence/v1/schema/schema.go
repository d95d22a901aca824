package schema

var statements = []string{
	`CREATE TABLE users (id VARCHAR(36) PRIMARY KEY, username VARCHAR(100), passwordHash VARCHAR(100), createdAt TIMESTAMP)`,
	`CREATE TABLE notes (id VARCHAR(36) PRIMARY KEY, owner VARCHAR(36), title VARCHAR(100), description TEXT, updatedAt TIMESTAMP, createdAt TIMESTAMP)`,
	`CREATE TABLE attachments (id VARCHAR(36) PRIMARY KEY, noteId VARCHAR(36), blobKey VARCHAR(255), contentType VARCHAR(50), sizeBytes INT, uploadedAt TIMESTAMP)`,
}

var dropStatements = []string{
	`DROP TABLE attachments`,
	`DROP TABLE notes`,
	`DROP TABLE users`,
}
