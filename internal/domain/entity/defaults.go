package entity

// Built-in FHIR fixtures used when no sample files are found. Downstream
// consumers key on these exact ids and values; do not edit them.

const defaultPatient Sample = `{
  "resourceType": "Patient",
  "id": "example-patient-1",
  "identifier": [
    {
      "system": "http://hospital.example.org/patients",
      "value": "12345"
    }
  ],
  "name": [
    {
      "use": "official",
      "family": "Doe",
      "given": ["John"]
    }
  ],
  "gender": "male",
  "birthDate": "1990-01-01",
  "active": true
}`

const defaultObservation Sample = `{
  "resourceType": "Observation",
  "id": "example-observation-1",
  "status": "final",
  "category": [
    {
      "coding": [
        {
          "system": "http://terminology.hl7.org/CodeSystem/observation-category",
          "code": "vital-signs",
          "display": "Vital Signs"
        }
      ]
    }
  ],
  "code": {
    "coding": [
      {
        "system": "http://loinc.org",
        "code": "8867-4",
        "display": "Heart rate"
      }
    ]
  },
  "subject": {
    "reference": "Patient/example-patient-1"
  },
  "valueQuantity": {
    "value": 72,
    "unit": "beats/minute",
    "system": "http://unitsofmeasure.org",
    "code": "/min"
  }
}`

// DefaultSamples returns the built-in sample resources in fixed order:
// the Patient first, then the Observation.
func DefaultSamples() []Sample {
	return []Sample{defaultPatient, defaultObservation}
}
