package push_test

import (
	"context"
	"fmt"
	"log"

	"github.com/dmitrymomot/pushkit/pkg/push"
)

func ExamplePush_SNSMessage() {
	p := push.NewAlert("Hello, World!", push.Badge(1))

	msg, err := p.SNSMessage()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(msg)
	// Output: {"default":"","APNS":"{\"aps\":{\"alert\":\"Hello, World!\",\"badge\":1}}","APNS_SANDBOX":"{\"aps\":{\"alert\":\"Hello, World!\",\"badge\":1}}","GCM":"{\"data\":{\"badge\":1,\"message\":\"Hello, World!\"}}"}
}

func ExampleNewChecked() {
	ctx := context.Background()

	cfg, err := push.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	client, err := push.NewChecked(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	endpointArn, err := client.RegisterDevice(ctx,
		"123coi12j3vi12u3o1k23pb12e0jqpfw79g7w6fyi2o4jg293urf9q7ct9x1oi2h",
		"arn:aws:sns:eu-west-1:000000000000:app/APNS/my-app",
	)
	if err != nil {
		log.Fatal(err)
	}

	err = client.SendPush(ctx, push.NewAlert("Hello, World!", push.Badge(1)), endpointArn)
	if err != nil {
		log.Fatal(err)
	}
}
