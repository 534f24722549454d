package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"contact-mapper/contact"
)

// jsonAPI decodes numbers as json.Number so that integers and floats keep
// their written form until a field type is inferred.
var jsonAPI = jsoniter.Config{
	EscapeHTML:             true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

func parseJSON(data []byte) (*Document, error) {
	doc := &Document{}
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}

	iter := jsoniter.ParseBytes(jsonAPI, data)

	var err error

	switch iter.WhatIsNext() {
	case jsoniter.ArrayValue:
		doc.Records, err = jsonRecords(iter)
	case jsoniter.ObjectValue:
		if jsoniter.Get(data, keyContacts).ValueType() == jsoniter.ArrayValue {
			err = doc.readJSONWrapper(iter)
		} else {
			var rec contact.Options

			rec, err = jsonOptions(iter)
			doc.Records = []contact.Options{rec}
		}
	default:
		return nil, errors.New("expected an object or an array of objects")
	}

	if err != nil {
		return nil, err
	}

	if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
		return nil, iter.Error
	}

	return doc, nil
}

func (d *Document) readJSONWrapper(iter *jsoniter.Iterator) error {
	var err error

	iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
		switch key {
		case keyVersion:
			d.Version = fmt.Sprint(iter.Read())
		case keyDefaults:
			d.Defaults, err = jsonOptions(iter)
		case keyContacts:
			d.Records, err = jsonRecords(iter)
		default:
			err = fmt.Errorf("unknown document key %q", key)
		}

		return err == nil
	})

	return err
}

func jsonRecords(iter *jsoniter.Iterator) ([]contact.Options, error) {
	if iter.WhatIsNext() != jsoniter.ArrayValue {
		return nil, errors.New("expected an array of objects")
	}

	var (
		records []contact.Options
		err     error
	)

	iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
		var rec contact.Options

		rec, err = jsonOptions(iter)
		records = append(records, rec)

		return err == nil
	})

	return records, err
}

func jsonOptions(iter *jsoniter.Iterator) (contact.Options, error) {
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, errors.New("expected an object")
	}

	opts := contact.Options{}

	iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
		opts = append(opts, contact.Option{Key: key, Value: iter.Read()})
		return iter.Error == nil
	})

	if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
		return nil, iter.Error
	}

	return opts, nil
}
