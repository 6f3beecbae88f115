package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Transport --dir ../../external/pwned --output pwned --outpkg pwnedmock --filename transport_mock.go
