package aws

import (
	"errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
)

// Session represents a session to AWS.
type Session struct {
	session *session.Session
}

// NewSession returns a session for region. Static credentials are used if an
// access key is given; otherwise the default credential chain is used.
func NewSession(accessKeyID, secretAccessKey, region string) (*Session, error) {
	if region == "" {
		return nil, errors.New("aws region required")
	}

	config := &aws.Config{Region: aws.String(region)}
	if accessKeyID != "" {
		config.Credentials = credentials.NewStaticCredentials(accessKeyID, secretAccessKey, "")
	}
	return NewSessionWithConfig(config)
}

// NewSessionWithConfig returns a session built from an SDK config.
func NewSessionWithConfig(config *aws.Config) (*Session, error) {
	s, err := session.NewSession(config)
	if err != nil {
		return nil, err
	}
	return &Session{session: s}, nil
}
