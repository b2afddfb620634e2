package router

// openAPIDoc es el contrato HTTP mantenido a mano (no hay swag init acá:
// el servicio es chico y el doc cambia poco). Se sirve en /swagger/doc.json
// y lo consume la UI de /swagger/.
const openAPIDoc = `{
  "openapi": "3.0.3",
  "info": {
    "title": "MedTimer Companion API",
    "description": "Personal medication reminder tracker. State is per session (X-Session-ID header) and lives in memory only.",
    "version": "1.0.0"
  },
  "components": {
    "parameters": {
      "sessionHeader": {
        "name": "X-Session-ID",
        "in": "header",
        "required": false,
        "schema": {"type": "string"},
        "description": "Session id. Omit to start a fresh session; the effective id is echoed back."
      }
    },
    "schemas": {
      "Schedule": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "days": {"type": "array", "items": {"type": "string"}},
          "times": {"type": "array", "items": {"type": "string", "example": "09:00"}},
          "start_date": {"type": "string", "example": "2026-08-29"}
        }
      },
      "Dose": {
        "type": "object",
        "properties": {
          "date": {"type": "string"},
          "name": {"type": "string"},
          "time": {"type": "string"},
          "status": {"type": "string", "enum": ["taken", "imminent", "missed", "upcoming"]},
          "taken": {"type": "boolean"},
          "remind": {"type": "boolean"},
          "countdown": {"type": "string"}
        }
      },
      "Adherence": {
        "type": "object",
        "properties": {
          "window": {"type": "string", "enum": ["calendar_week", "trailing7"]},
          "percent": {"type": "integer"},
          "badge": {"type": "string", "enum": ["outstanding", "great", "needs_work"]},
          "quote": {"type": "string"}
        }
      }
    }
  },
  "paths": {
    "/schedules": {
      "post": {
        "summary": "Add a recurring medication schedule",
        "parameters": [{"$ref": "#/components/parameters/sessionHeader"}],
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["name", "days", "times"],
                "properties": {
                  "name": {"type": "string"},
                  "days": {"type": "array", "items": {"type": "string"}, "description": "Full names or 3-letter prefixes"},
                  "times": {"type": "array", "items": {"type": "string", "example": "09:00"}},
                  "start_date": {"type": "string", "example": "2026-08-29"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Created", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Schedule"}}}},
          "400": {"description": "Validation error"}
        }
      },
      "get": {
        "summary": "List schedules in insertion order",
        "parameters": [{"$ref": "#/components/parameters/sessionHeader"}],
        "responses": {"200": {"description": "OK"}}
      }
    },
    "/medicines": {
      "get": {"summary": "Common medicine names for quick select", "responses": {"200": {"description": "OK"}}}
    },
    "/doses/today": {
      "get": {
        "summary": "Today's expected doses with status",
        "parameters": [{"$ref": "#/components/parameters/sessionHeader"}],
        "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/Dose"}}}}}}
      }
    },
    "/doses": {
      "get": {
        "summary": "Expected doses for an arbitrary date",
        "parameters": [
          {"$ref": "#/components/parameters/sessionHeader"},
          {"name": "date", "in": "query", "schema": {"type": "string"}, "description": "YYYY-MM-DD, default today"}
        ],
        "responses": {"200": {"description": "OK"}, "400": {"description": "Bad date"}}
      },
      "delete": {
        "summary": "Reset taken marks (all, or a date range with from/to)",
        "parameters": [
          {"$ref": "#/components/parameters/sessionHeader"},
          {"name": "from", "in": "query", "schema": {"type": "string"}},
          {"name": "to", "in": "query", "schema": {"type": "string"}}
        ],
        "responses": {"204": {"description": "Reset"}, "400": {"description": "Bad range"}}
      }
    },
    "/doses/taken": {
      "post": {
        "summary": "Mark a dose taken (idempotent, allowed even past due)",
        "parameters": [{"$ref": "#/components/parameters/sessionHeader"}],
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["name", "time"],
                "properties": {
                  "date": {"type": "string", "description": "YYYY-MM-DD, default today"},
                  "name": {"type": "string"},
                  "time": {"type": "string", "example": "09:00"}
                }
              }
            }
          }
        },
        "responses": {"204": {"description": "Marked"}, "400": {"description": "Validation error"}}
      }
    },
    "/settings/reminder": {
      "get": {
        "summary": "Current reminder lead minutes",
        "parameters": [{"$ref": "#/components/parameters/sessionHeader"}],
        "responses": {"200": {"description": "OK"}}
      },
      "put": {
        "summary": "Set reminder lead minutes (1-60)",
        "parameters": [{"$ref": "#/components/parameters/sessionHeader"}],
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {"type": "object", "properties": {"lead_minutes": {"type": "integer", "minimum": 1, "maximum": 60}}}
            }
          }
        },
        "responses": {"204": {"description": "Updated"}, "400": {"description": "Out of range"}}
      }
    },
    "/adherence": {
      "get": {
        "summary": "Adherence percentage over a window",
        "parameters": [
          {"$ref": "#/components/parameters/sessionHeader"},
          {"name": "window", "in": "query", "schema": {"type": "string", "enum": ["calendar_week", "trailing7"]}, "description": "Default calendar_week"}
        ],
        "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Adherence"}}}}, "400": {"description": "Unknown window"}}
      }
    },
    "/reminders/tone": {
      "get": {
        "summary": "Audible alert tone (880 Hz sine, WAV)",
        "responses": {"200": {"description": "audio/wav"}}
      }
    },
    "/health": {
      "get": {"summary": "Liveness", "responses": {"200": {"description": "ok"}}}
    }
  }
}`
