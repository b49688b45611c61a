package kafka

var ConsumeWith = consume
